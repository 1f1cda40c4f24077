// Package main is the entry point for the spherelab viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shogonir/three-lab/internal/app"
	"github.com/shogonir/three-lab/internal/config"
	"github.com/shogonir/three-lab/internal/engine/camera"
	"github.com/shogonir/three-lab/internal/engine/preview"
	"github.com/shogonir/three-lab/internal/engine/scene"
	"github.com/shogonir/three-lab/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== spherelab ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.PreviewPath(); path != "" {
		if err := renderPreview(cfg, path); err != nil {
			logger.Error("preview failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("preview written", zap.String("path", path))
		return
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// renderPreview renders one CPU reference frame from the configured
// camera start pose and writes it to path.
func renderPreview(cfg *config.Config, path string) error {
	s := scene.Build(cfg)
	pose := camera.Polar{
		Phi:    cfg.Camera.Phi,
		Theta:  cfg.Camera.Theta,
		Radius: cfg.Camera.Radius,
	}.Pose()

	r := preview.Renderer{
		Width:      cfg.Preview.Width,
		Height:     cfg.Preview.Height,
		FOVDegrees: cfg.Camera.FOVDegrees,
	}
	return preview.WritePNG(r.Render(s, pose), path)
}
