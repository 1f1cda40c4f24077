// Package app wires the window, input, renderer and orbit camera into
// the interactive viewer loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/shogonir/three-lab/internal/config"
	"github.com/shogonir/three-lab/internal/engine/camera"
	"github.com/shogonir/three-lab/internal/engine/input"
	"github.com/shogonir/three-lab/internal/engine/renderer"
	"github.com/shogonir/three-lab/internal/engine/scene"
	"github.com/shogonir/three-lab/internal/engine/window"
	"github.com/shogonir/three-lab/internal/logger"
)

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	scene      *scene.Scene
	controller *camera.Controller

	// Frames are rendered on demand: startup, resize and accepted drags
	// mark the view dirty rather than redrawing every loop iteration.
	dirty bool
}

// New builds the scene and creates the window, GL context and renderer.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("spheres", cfg.Scene.Rows*cfg.Scene.Cols),
	)

	a := &App{
		cfg:   cfg,
		scene: scene.Build(cfg),
		dirty: true,
	}

	a.controller = camera.NewController(camera.Polar{
		Phi:    cfg.Camera.Phi,
		Theta:  cfg.Camera.Theta,
		Radius: cfg.Camera.Radius,
	}, func(camera.Pose) {
		a.dirty = true
	})
	a.controller.SetSensitivity(cfg.Camera.Sensitivity)

	var err error
	a.window, err = window.New(window.Config{
		Title:      "three-lab",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		FOVDegrees: cfg.Camera.FOVDegrees,
	}, a.scene.Mesh)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	logger.Info("viewer initialized")
	return a, nil
}

// Run drives the event loop until quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for a.running {
		if a.input.Update() {
			break
		}

		for _, event := range a.input.Events() {
			a.handleEvent(event)
		}

		if a.dirty {
			a.renderer.RenderFrame(a.scene, a.controller.Pose())
			a.window.SwapBuffers()
			a.dirty = false

			frameCount++
			if time.Since(fpsTimer) >= time.Second {
				logger.Debug("frames", zap.Int("count", frameCount))
				frameCount = 0
				fpsTimer = time.Now()
			}
		} else {
			// Idle; nothing changed since the last frame.
			sdl.Delay(8)
		}
	}

	return nil
}

// handleEvent routes one input event to the camera or window state.
func (a *App) handleEvent(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		a.renderer.Resize(event.Width, event.Height)
		a.dirty = true

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			a.controller.SetPressed(true)
		}

	case input.EventMouseUp:
		if event.Button == sdl.BUTTON_LEFT {
			a.controller.SetPressed(false)
		}

	case input.EventMouseMove:
		a.controller.OnDrag(float32(event.DX), float32(event.DY))

	case input.EventKeyDown:
		if event.Key == sdl.SCANCODE_ESCAPE {
			a.running = false
		}
	}
}

// Close releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
