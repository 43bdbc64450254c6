package main

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/seqsense/pcgol/mat"
)

// decodeGLTF reads a .gltf or .glb document. External buffers are read from fsys.
func decodeGLTF(r io.Reader, fsys fs.FS) (*asset, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoderFS(r, fsys).Decode(doc); err != nil {
		return nil, err
	}
	return assetFromDocument(doc)
}

// assetFromDocument flattens the node hierarchy of the default scene into
// world-space triangle lists.
func assetFromDocument(doc *gltf.Document) (*asset, error) {
	a := &asset{scale: 1}
	materials := make(map[int]*material)
	visited := make(map[int]bool)

	var walk func(i int, parent mat.Mat4) error
	walk = func(i int, parent mat.Mat4) error {
		if i < 0 || i >= len(doc.Nodes) || visited[i] {
			return nil
		}
		visited[i] = true
		n := doc.Nodes[i]
		world := parent.MulAffine(nodeMatrix(n))
		if n.Mesh != nil {
			meshes, err := meshesFromGLTF(doc, *n.Mesh, world, materials)
			if err != nil {
				return err
			}
			a.meshes = append(a.meshes, meshes...)
		}
		for _, c := range n.Children {
			if err := walk(c, world); err != nil {
				return err
			}
		}
		return nil
	}

	identity := mat.Translate(0, 0, 0)
	for _, root := range sceneRoots(doc) {
		if err := walk(root, identity); err != nil {
			return nil, err
		}
	}
	if len(a.meshes) == 0 {
		return nil, errNoTriangles
	}
	return a, nil
}

func sceneRoots(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		i := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			i = *doc.Scene
		}
		return doc.Scenes[i].Nodes
	}
	// Without scenes, every node that is nobody's child is a root.
	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func nodeMatrix(n *gltf.Node) mat.Mat4 {
	var m mat.Mat4
	var zero, identity = true, true
	for i := range m {
		m[i] = float32(n.Matrix[i])
		if m[i] != 0 {
			zero = false
		}
		var id float32
		if i%5 == 0 {
			id = 1
		}
		if m[i] != id {
			identity = false
		}
	}
	if !zero && !identity {
		return m
	}

	t := mat.Vec3{float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2])}
	s := mat.Vec3{float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2])}
	if s == (mat.Vec3{}) {
		s = mat.Vec3{1, 1, 1}
	}
	q := [4]float32{float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2]), float32(n.Rotation[3])}
	if q == ([4]float32{}) {
		q[3] = 1
	}
	return mat.Translate(t[0], t[1], t[2]).
		MulAffine(quaternionMatrix(q)).
		MulAffine(mat.Mat4{
			s[0], 0, 0, 0,
			0, s[1], 0, 0,
			0, 0, s[2], 0,
			0, 0, 0, 1,
		})
}

// quaternionMatrix converts an (x, y, z, w) unit quaternion.
func quaternionMatrix(q [4]float32) mat.Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return mat.Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0,
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0,
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

func meshesFromGLTF(doc *gltf.Document, i int, world mat.Mat4, materials map[int]*material) ([]*mesh, error) {
	if i < 0 || i >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", i)
	}
	gm := doc.Meshes[i]
	normalMatrix := world.InvAffine()

	var out []*mesh
	for _, primitive := range gm.Primitives {
		// Only triangle lists are rendered.
		if primitive.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posIdx, ok := primitive.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		acr, err := accessor(doc, posIdx)
		if err != nil {
			return nil, err
		}
		positions, err := modeler.ReadPosition(doc, acr, nil)
		if err != nil {
			return nil, err
		}
		var normals [][3]float32
		if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
			acr, err := accessor(doc, normIdx)
			if err != nil {
				return nil, err
			}
			normals, _ = modeler.ReadNormal(doc, acr, nil)
		}

		var indices []uint32
		if primitive.Indices != nil {
			acr, err := accessor(doc, *primitive.Indices)
			if err != nil {
				return nil, err
			}
			indices, err = modeler.ReadIndices(doc, acr, nil)
			if err != nil {
				return nil, err
			}
		} else {
			indices = make([]uint32, len(positions))
			for k := range indices {
				indices[k] = uint32(k)
			}
		}

		n := len(indices) - len(indices)%3
		if n == 0 {
			continue
		}
		m := &mesh{
			name:      gm.Name,
			positions: newVec3Cloud(n),
			normals:   newVec3Cloud(n),
			material:  materialFromGLTF(doc, primitive.Material, materials),
		}
		it, err := m.positions.Vec3Iterator()
		if err != nil {
			return nil, err
		}
		nt, err := m.normals.Vec3Iterator()
		if err != nil {
			return nil, err
		}
		for k := 0; k < n; k += 3 {
			var tri, nor [3]mat.Vec3
			for j := 0; j < 3; j++ {
				idx := int(indices[k+j])
				if idx >= len(positions) {
					return nil, fmt.Errorf("vertex index %d out of range", idx)
				}
				p := positions[idx]
				tri[j] = world.TransformAffine(mat.Vec3{p[0], p[1], p[2]})
				if idx < len(normals) {
					nv := normals[idx]
					nor[j] = transformNormal(normalMatrix, mat.Vec3{nv[0], nv[1], nv[2]})
				}
			}
			if len(normals) < len(positions) {
				fn := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
				if fn.NormSq() > 0 {
					fn = fn.Normalized()
				}
				nor = [3]mat.Vec3{fn, fn, fn}
			}
			for j := 0; j < 3; j++ {
				it.SetVec3(tri[j])
				it.Incr()
				nt.SetVec3(nor[j])
				nt.Incr()
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func accessor(doc *gltf.Document, i int) (*gltf.Accessor, error) {
	if i < 0 || i >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", i)
	}
	return doc.Accessors[i], nil
}

// transformNormal multiplies by the transposed inverse of the world matrix.
func transformNormal(inv mat.Mat4, n mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := 0; i < 3; i++ {
		out[i] = inv[i*4+0]*n[0] + inv[i*4+1]*n[1] + inv[i*4+2]*n[2]
	}
	if out.NormSq() > 0 {
		return out.Normalized()
	}
	return out
}

func materialFromGLTF(doc *gltf.Document, i *int, materials map[int]*material) *material {
	idx := -1
	if i != nil && *i >= 0 && *i < len(doc.Materials) {
		idx = *i
	}
	if m, ok := materials[idx]; ok {
		return m
	}
	m := &material{color: [4]float32{1, 1, 1, 1}}
	if idx >= 0 {
		gm := doc.Materials[idx]
		m.name = gm.Name
		if pbr := gm.PBRMetallicRoughness; pbr != nil && pbr.BaseColorFactor != nil {
			c := pbr.BaseColorFactor
			m.color = [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
		}
	}
	materials[idx] = m
	return m
}
