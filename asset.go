package main

import (
	"errors"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

type material struct {
	name  string
	color [4]float32
}

// mesh is a triangle list. positions and normals are parallel x/y/z clouds.
type mesh struct {
	name      string
	positions *pc.PointCloud
	normals   *pc.PointCloud
	material  *material
}

type asset struct {
	meshes []*mesh
	// scale is the authored scale of the asset root.
	scale float32
}

func newVec3Cloud(n int) *pc.PointCloud {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   n,
			Height:  1,
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	return pp
}

func (m *mesh) vertices() int {
	return m.positions.Points
}

func (a *asset) vertices() int {
	var n int
	for _, m := range a.meshes {
		n += m.vertices()
	}
	return n
}

// materials returns the distinct materials in mesh order.
func (a *asset) materials() []*material {
	seen := make(map[*material]bool)
	var out []*material
	for _, m := range a.meshes {
		if m.material == nil || seen[m.material] {
			continue
		}
		seen[m.material] = true
		out = append(out, m.material)
	}
	return out
}

var errEmptyAsset = errors.New("asset has no vertices")

func (a *asset) bounds() (mat.Vec3, mat.Vec3, error) {
	var min, max mat.Vec3
	var ok bool
	for _, m := range a.meshes {
		if m.vertices() == 0 {
			continue
		}
		it, err := m.positions.Vec3Iterator()
		if err != nil {
			return mat.Vec3{}, mat.Vec3{}, err
		}
		mMin, mMax, err := pc.MinMaxVec3(it)
		if err != nil {
			return mat.Vec3{}, mat.Vec3{}, err
		}
		if !ok {
			min, max, ok = mMin, mMax, true
			continue
		}
		min, max = vec3Min(min, mMin), vec3Max(max, mMax)
	}
	if !ok {
		return mat.Vec3{}, mat.Vec3{}, errEmptyAsset
	}
	return min, max, nil
}

func vec3Min(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

func vec3Max(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}
