package main

const vsSource = `#version 300 es
	layout (location = 0) in vec3 aVertexPosition;
	layout (location = 1) in vec3 aVertexNormal;
	uniform mat4 uProjectionMatrix;
	uniform mat4 uViewMatrix;
	uniform mat4 uModelMatrix;
	out highp vec3 vNormal;

	void main(void) {
		gl_Position = uProjectionMatrix * uViewMatrix * uModelMatrix * vec4(aVertexPosition, 1.0);
		// Model matrix is a rotation times a uniform scale.
		vNormal = normalize(mat3(uModelMatrix) * aVertexNormal);
	}
`

const fsSource = `#version 300 es
	precision mediump float;
	in highp vec3 vNormal;
	uniform vec3 uBaseColor;
	uniform float uAlpha;
	uniform vec3 uLightDirection;
	uniform vec3 uDirectionalColor;
	uniform vec3 uAmbientColor;
	out vec4 outColor;

	void main(void) {
		float d = max(dot(normalize(vNormal), uLightDirection), 0.0);
		vec3 light = uAmbientColor + uDirectionalColor * d;
		outColor = vec4(uBaseColor * light, uAlpha);
	}
`
