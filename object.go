package main

import (
	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

// sceneObject is the displayed asset and its user-controlled transform.
type sceneObject struct {
	node      *node
	rotationY float32
	baseScale float32
	zoom      float32
}

func (o *sceneObject) scale() float32 {
	return o.baseScale * o.zoom
}

// modelMatrix rotates about Y and then scales uniformly.
func (o *sceneObject) modelMatrix() mat.Mat4 {
	s, c := math32.Sincos(o.rotationY)
	k := o.scale()
	return mat.Mat4{
		c * k, 0, -s * k, 0,
		0, k, 0, 0,
		s * k, 0, c * k, 0,
		0, 0, 0, 1,
	}
}
