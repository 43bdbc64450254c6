package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

type viewport struct {
	fov       float64
	aspect    float64
	near, far float32
	position  mat.Vec3

	width, height int
}

func newViewport(c *viewerConfig) *viewport {
	v := &viewport{
		fov:    float64(c.FOV) * math.Pi / 180,
		aspect: 1,
		near:   c.Near,
		far:    c.Far,
	}
	v.reset(c)
	return v
}

func (v *viewport) reset(c *viewerConfig) {
	v.position = mat.Vec3{0, 0, c.InitialCameraDistance}
}

// resize returns false if the size is unchanged.
func (v *viewport) resize(width, height int) bool {
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	if height > 0 {
		v.aspect = float64(width) / float64(height)
	}
	return true
}

func (v *viewport) move(dy float32) {
	v.position[1] += dy
}

func (v *viewport) projectionMatrix() mat.Mat4 {
	return mat.Perspective(float32(v.fov), float32(v.aspect), v.near, v.far)
}

func (v *viewport) viewMatrix() mat.Mat4 {
	return mat.Translate(-v.position[0], -v.position[1], -v.position[2])
}
