// Package shaders holds the GLSL sources for scene rendering.
package shaders

// BodyVertex transforms sphere vertices and passes world-space data
// for lighting.
const BodyVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vTexCoord;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
    vWorldPos = vec3(uModel * vec4(aPos, 1.0));
    vNormal = mat3(uModel) * aNormal;
    vTexCoord = aTexCoord;
}
`

// BodyFragment textures a body and lights it from the sun at the
// world origin. Emissive bodies (the sun itself) skip lighting.
const BodyFragment = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec3 uLightPos;
uniform int uEmissive;

out vec4 FragColor;

void main() {
    vec4 base = texture(uTexture, vTexCoord);
    if (uEmissive == 1) {
        FragColor = base;
        return;
    }

    vec3 n = normalize(vNormal);
    vec3 lightDir = normalize(uLightPos - vWorldPos);
    float diffuse = max(dot(n, lightDir), 0.0);
    float ambient = 0.12;
    FragColor = vec4(base.rgb * (ambient + diffuse), base.a);
}
`

// OrbitVertex transforms ring vertices.
const OrbitVertex = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

// OrbitFragment draws rings in a constant translucent gray.
const OrbitFragment = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 0.6);
}
`
