package main

import (
	"github.com/seqsense/pcgol/mat"
)

type lighting struct {
	// direction points from the origin towards the directional light.
	direction   mat.Vec3
	directional mat.Vec3
	ambient     mat.Vec3
}

type node struct {
	asset     *asset
	transform mat.Mat4
}

type scene struct {
	nodes      []*node
	lighting   lighting
	background *[4]float32
}

func (s *scene) add(n *node) {
	s.nodes = append(s.nodes, n)
}

func (s *scene) remove(n *node) bool {
	for i, nn := range s.nodes {
		if nn == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			return true
		}
	}
	return false
}
