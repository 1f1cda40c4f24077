package renderer

const vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 worldPos = uModel * vec4(aPos, 1.0);
    vWorldPos = worldPos.xyz;
    vNormal = aNormal;
    gl_Position = uProjection * uView * worldPos;
}
`

// The fragment shader is the GLSL twin of the CPU evaluator: same
// material derivation, same irradiance convention, same Cook-Torrance
// terms and epsilons.
const fragmentShaderSource = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;

out vec4 FragColor;

uniform vec3 uCameraPos;
uniform vec3 uAlbedo;
uniform float uMetallic;
uniform float uRoughness;

const int MAX_LIGHTS = 4;
const float PI = 3.14159265359;
const float EPSILON = 1e-6;

uniform int uNumDirLights;
uniform vec3 uDirLightDir[MAX_LIGHTS];
uniform vec3 uDirLightColor[MAX_LIGHTS];

uniform int uNumPointLights;
uniform vec3 uPointLightPos[MAX_LIGHTS];
uniform vec3 uPointLightColor[MAX_LIGHTS];
uniform float uPointLightDistance[MAX_LIGHTS];
uniform float uPointLightDecay[MAX_LIGHTS];

uniform int uNumSpotLights;
uniform vec3 uSpotLightPos[MAX_LIGHTS];
uniform vec3 uSpotLightDir[MAX_LIGHTS];
uniform vec3 uSpotLightColor[MAX_LIGHTS];
uniform float uSpotLightDistance[MAX_LIGHTS];
uniform float uSpotLightDecay[MAX_LIGHTS];
uniform float uSpotLightConeCos[MAX_LIGHTS];
uniform float uSpotLightPenumbraCos[MAX_LIGHTS];

float distributionGGX(float alpha, float dotNH) {
    float a2 = alpha * alpha;
    float d = dotNH * dotNH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float geometrySmithSchlick(float alpha, float dotNL, float dotNV) {
    float k = alpha * alpha * 0.5 + EPSILON;
    float gLight = dotNL / (dotNL * (1.0 - k) + k);
    float gView = dotNV / (dotNV * (1.0 - k) + k);
    return gLight * gView;
}

vec3 fresnelSchlick(vec3 specularColor, float dotVH) {
    float f = pow(1.0 - clamp(dotVH, 0.0, 1.0), 5.0);
    return specularColor + (vec3(1.0) - specularColor) * f;
}

vec3 cookTorrance(vec3 specularColor, vec3 n, vec3 v, vec3 l, float roughness) {
    float alpha = roughness * roughness;
    vec3 h = normalize(l + v);

    float dotNL = clamp(dot(n, l), 0.0, 1.0);
    float dotNV = clamp(dot(n, v), 0.0, 1.0);
    float dotNH = clamp(dot(n, h), 0.0, 1.0);
    float dotVH = clamp(dot(v, h), 0.0, 1.0);

    float d = distributionGGX(alpha, dotNH);
    float g = geometrySmithSchlick(alpha, dotNL, dotNV);
    vec3 f = fresnelSchlick(specularColor, dotVH);

    return f * (g * d / (4.0 * dotNL * dotNV + EPSILON));
}

float rangeAttenuation(float d, float cutoff, float decay) {
    if (decay <= 0.0 || cutoff <= 0.0) {
        return 1.0;
    }
    return pow(clamp(1.0 - d / cutoff, 0.0, 1.0), decay);
}

void addDirect(vec3 lightColor, vec3 lightDir, vec3 n, vec3 v,
               vec3 diffuseColor, vec3 specularColor, float roughness,
               inout vec3 directDiffuse, inout vec3 directSpecular) {
    float dotNL = clamp(dot(n, lightDir), 0.0, 1.0);
    vec3 irradiance = lightColor * dotNL * PI;

    directDiffuse += irradiance * (diffuseColor / PI);
    directSpecular += irradiance * cookTorrance(specularColor, n, v, lightDir, roughness);
}

void main() {
    vec3 n = normalize(vNormal);
    vec3 v = normalize(uCameraPos - vWorldPos);

    vec3 diffuseColor = mix(uAlbedo, vec3(0.0), uMetallic);
    vec3 specularColor = mix(vec3(0.04), uAlbedo, uMetallic);

    vec3 directDiffuse = vec3(0.0);
    vec3 directSpecular = vec3(0.0);

    for (int i = 0; i < uNumDirLights; i++) {
        addDirect(uDirLightColor[i], uDirLightDir[i], n, v,
                  diffuseColor, specularColor, uRoughness,
                  directDiffuse, directSpecular);
    }

    for (int i = 0; i < uNumPointLights; i++) {
        vec3 toLight = uPointLightPos[i] - vWorldPos;
        float d = length(toLight);
        if (uPointLightDistance[i] != 0.0 && d >= uPointLightDistance[i]) {
            continue;
        }
        vec3 color = uPointLightColor[i] * rangeAttenuation(d, uPointLightDistance[i], uPointLightDecay[i]);
        addDirect(color, toLight / d, n, v,
                  diffuseColor, specularColor, uRoughness,
                  directDiffuse, directSpecular);
    }

    for (int i = 0; i < uNumSpotLights; i++) {
        vec3 toLight = uSpotLightPos[i] - vWorldPos;
        float d = length(toLight);
        vec3 dir = toLight / d;
        float angleCos = dot(dir, uSpotLightDir[i]);
        if (angleCos <= uSpotLightConeCos[i]) {
            continue;
        }
        if (uSpotLightDistance[i] != 0.0 && d >= uSpotLightDistance[i]) {
            continue;
        }
        float spotEffect = smoothstep(uSpotLightConeCos[i], uSpotLightPenumbraCos[i], angleCos);
        vec3 color = uSpotLightColor[i] * spotEffect * rangeAttenuation(d, uSpotLightDistance[i], uSpotLightDecay[i]);
        addDirect(color, dir, n, v,
                  diffuseColor, specularColor, uRoughness,
                  directDiffuse, directSpecular);
    }

    FragColor = vec4(directDiffuse + directSpecular, 1.0);
}
`
