package main

// renderer draws a scene. AddNode and RemoveNode keep the scene's node list
// and the renderer's GPU state in step.
type renderer interface {
	CreateScene() *scene
	AddNode(s *scene, n *node)
	RemoveNode(s *scene, n *node)
	RenderFrame(s *scene, v *viewport)
	SetOutputSize(width, height int)
	ReleaseGeometry(n *node)
	ReleaseMaterial(n *node)
}
