package main

import (
	"syscall/js"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

const (
	aVertexPosition = 0
	aVertexNormal   = 1
)

type meshBuffers struct {
	position, normal webgl.Buffer
	n                int
}

type webglRenderer struct {
	gl      *webgl.WebGL
	program webgl.Program

	uProjectionMatrix, uViewMatrix, uModelMatrix webgl.Location
	uBaseColor, uAlpha                           webgl.Location
	uLightDirection, uDirectionalColor           webgl.Location
	uAmbientColor                                webgl.Location

	buffers   map[*mesh]*meshBuffers
	materials map[*material]struct{}
}

func newWebGLRenderer(gl *webgl.WebGL) (*webglRenderer, error) {
	program, err := newProgram(gl, vsSource, fsSource)
	if err != nil {
		return nil, err
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1.0)

	return &webglRenderer{
		gl:                gl,
		program:           program,
		uProjectionMatrix: gl.GetUniformLocation(program, "uProjectionMatrix"),
		uViewMatrix:       gl.GetUniformLocation(program, "uViewMatrix"),
		uModelMatrix:      gl.GetUniformLocation(program, "uModelMatrix"),
		uBaseColor:        gl.GetUniformLocation(program, "uBaseColor"),
		uAlpha:            gl.GetUniformLocation(program, "uAlpha"),
		uLightDirection:   gl.GetUniformLocation(program, "uLightDirection"),
		uDirectionalColor: gl.GetUniformLocation(program, "uDirectionalColor"),
		uAmbientColor:     gl.GetUniformLocation(program, "uAmbientColor"),
		buffers:           make(map[*mesh]*meshBuffers),
		materials:         make(map[*material]struct{}),
	}, nil
}

func (r *webglRenderer) CreateScene() *scene {
	return &scene{}
}

func (r *webglRenderer) AddNode(s *scene, n *node) {
	gl := r.gl
	for _, m := range n.asset.meshes {
		if _, ok := r.buffers[m]; ok || m.vertices() == 0 {
			continue
		}
		b := &meshBuffers{
			position: gl.CreateBuffer(),
			normal:   gl.CreateBuffer(),
			n:        m.vertices(),
		}
		gl.BindBuffer(gl.ARRAY_BUFFER, b.position)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(m.positions.Data), gl.STATIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.normal)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(m.normals.Data), gl.STATIC_DRAW)
		r.buffers[m] = b
	}
	for _, m := range n.asset.materials() {
		r.materials[m] = struct{}{}
	}
	s.add(n)
}

func (r *webglRenderer) RemoveNode(s *scene, n *node) {
	s.remove(n)
}

func (r *webglRenderer) ReleaseGeometry(n *node) {
	for _, m := range n.asset.meshes {
		b, ok := r.buffers[m]
		if !ok {
			continue
		}
		r.gl.JS().Call("deleteBuffer", js.Value(b.position))
		r.gl.JS().Call("deleteBuffer", js.Value(b.normal))
		delete(r.buffers, m)
	}
}

// ReleaseMaterial forgets the materials of the node. Base colors are plain
// uniforms, so no GPU object is bound to them.
func (r *webglRenderer) ReleaseMaterial(n *node) {
	for _, m := range n.asset.materials() {
		delete(r.materials, m)
	}
}

func (r *webglRenderer) SetOutputSize(width, height int) {
	r.gl.Canvas.SetWidth(width)
	r.gl.Canvas.SetHeight(height)
	r.gl.Viewport(0, 0, width, height)
}

func (r *webglRenderer) RenderFrame(s *scene, v *viewport) {
	gl := r.gl
	if bg := s.background; bg != nil {
		gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	} else {
		gl.ClearColor(0, 0, 0, 0)
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if len(s.nodes) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProjectionMatrix, false, v.projectionMatrix())
	gl.UniformMatrix4fv(r.uViewMatrix, false, v.viewMatrix())
	gl.Uniform3fv(r.uLightDirection, s.lighting.direction)
	gl.Uniform3fv(r.uDirectionalColor, s.lighting.directional)
	gl.Uniform3fv(r.uAmbientColor, s.lighting.ambient)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexNormal)

	for _, n := range s.nodes {
		gl.UniformMatrix4fv(r.uModelMatrix, false, n.transform)
		for _, m := range n.asset.meshes {
			b, ok := r.buffers[m]
			if !ok {
				continue
			}
			c := m.material.color
			gl.Uniform3fv(r.uBaseColor, mat.Vec3{c[0], c[1], c[2]})
			gl.Uniform1f(r.uAlpha, c[3])

			gl.BindBuffer(gl.ARRAY_BUFFER, b.position)
			gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, m.positions.Stride(), 0)
			gl.BindBuffer(gl.ARRAY_BUFFER, b.normal)
			gl.VertexAttribPointer(aVertexNormal, 3, gl.FLOAT, false, m.normals.Stride(), 0)
			gl.DrawArrays(gl.TRIANGLES, 0, b.n)
		}
	}
}
