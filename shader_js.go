package main

import (
	"errors"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

func initShader(gl *webgl.WebGL, typ webgl.ShaderType, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		name := "VERTEX_SHADER"
		if typ == gl.FRAGMENT_SHADER {
			name = "FRAGMENT_SHADER"
		}
		return webgl.Shader(js.Null()), errors.New("compile failed (" + name + ")")
	}
	return s, nil
}

func newProgram(gl *webgl.WebGL, vsSrc, fsSrc string) (webgl.Program, error) {
	vs, err := initShader(gl, gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return webgl.Program(js.Null()), err
	}
	fs, err := initShader(gl, gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return webgl.Program(js.Null()), err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Program(js.Null()), errContextLost
		}
		return webgl.Program(js.Null()), errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}
	return program, nil
}
