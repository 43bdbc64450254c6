package main

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/seqsense/pcgol/mat"
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePan
)

type controllerState int

const (
	stateIdle controllerState = iota
	stateDisambiguating
	stateRotating
	statePanning
	statePinchZooming
)

func (s controllerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateDisambiguating:
		return "disambiguating"
	case stateRotating:
		return "rotating"
	case statePanning:
		return "panning"
	case statePinchZooming:
		return "pinch-zooming"
	default:
		return "unknown"
	}
}

type contact struct {
	X, Y float32
}

func distance(a, b contact) float32 {
	return math32.Hypot(a.X-b.X, a.Y-b.Y)
}

// gestureSession lives from a press to the following release.
type gestureSession struct {
	start, last   contact
	mode          gestureMode
	contacts      int
	pinchDistance float32
}

// controller interprets user input and owns the displayed object and the
// camera of one viewer. It is not safe for concurrent use.
type controller struct {
	cfg      *viewerConfig
	renderer renderer
	scene    *scene
	view     *viewport
	object   *sceneObject
	session  *gestureSession
	loadErr  error
	log      *slog.Logger
}

func newController(cfg *viewerConfig, r renderer, log *slog.Logger) *controller {
	s := r.CreateScene()
	s.lighting = cfg.lighting()
	s.background, _ = cfg.background()
	return &controller{
		cfg:      cfg,
		renderer: r,
		scene:    s,
		view:     newViewport(cfg),
		log:      log,
	}
}

func (c *controller) State() controllerState {
	s := c.session
	switch {
	case s == nil:
		return stateIdle
	case s.contacts == 2:
		return statePinchZooming
	case s.mode == gestureRotate:
		return stateRotating
	case s.mode == gesturePan:
		return statePanning
	default:
		return stateDisambiguating
	}
}

func (c *controller) HasObject() bool {
	return c.object != nil
}

// widthFactor keeps drag sensitivity visually constant across screen sizes.
func (c *controller) widthFactor() float32 {
	if c.view.width <= 0 {
		return 1
	}
	return float32(c.view.width) / c.cfg.ReferenceWidth
}

func (c *controller) PressStart(points []contact) {
	if len(points) == 0 {
		return
	}
	s := &gestureSession{
		start:    points[0],
		last:     points[0],
		contacts: len(points),
	}
	if len(points) == 2 {
		s.pinchDistance = distance(points[0], points[1])
	}
	c.session = s
}

func (c *controller) Move(points []contact) {
	s := c.session
	if s == nil || len(points) == 0 || c.object == nil {
		return
	}
	p := points[0]

	if s.mode == gestureNone {
		if math32.Abs(p.X-s.start.X) > math32.Abs(p.Y-s.start.Y) {
			s.mode = gestureRotate
		} else {
			s.mode = gesturePan
		}
	}
	switch s.mode {
	case gestureRotate:
		c.object.rotationY += (p.X - s.last.X) * c.cfg.RotationSpeed * c.widthFactor()
	case gesturePan:
		c.view.move((p.Y - s.last.Y) * c.cfg.MoveSpeed * c.widthFactor())
	}

	if len(points) == 2 {
		d := distance(points[0], points[1])
		if s.pinchDistance > 0 {
			c.setZoom(c.object.zoom * d / s.pinchDistance)
		}
		s.pinchDistance = d
	}
	s.contacts = len(points)
	s.last = p
}

func (c *controller) Release() {
	c.session = nil
}

// Wheel steps the zoom factor by the configured speed per event.
func (c *controller) Wheel(deltaY float64) {
	if c.object == nil {
		return
	}
	if c.session != nil && c.session.mode != gestureNone {
		return
	}
	switch {
	case deltaY < 0:
		c.setZoom(c.object.zoom + c.cfg.ZoomSpeed)
	case deltaY > 0:
		c.setZoom(c.object.zoom - c.cfg.ZoomSpeed)
	}
}

func (c *controller) setZoom(z float32) {
	switch {
	case z < c.cfg.ZoomMin:
		z = c.cfg.ZoomMin
	case z > c.cfg.ZoomMax:
		z = c.cfg.ZoomMax
	}
	c.object.zoom = z
}

func (c *controller) Resize(width, height int) {
	if !c.view.resize(width, height) {
		return
	}
	c.renderer.SetOutputSize(width, height)
}

func (c *controller) Load(l assetLoader, url string) {
	c.log.Info("loading model", "url", url)
	c.loadErr = nil
	l.Load(url, c.SetAsset, c.Progress, c.LoadFailed)
}

// SetAsset replaces the displayed object. The previous node is detached and
// its resources are released before the new node is attached.
func (c *controller) SetAsset(a *asset) {
	c.detach()
	c.loadErr = nil

	base := a.scale
	if c.cfg.BaseScale != nil {
		base = *c.cfg.BaseScale
	}
	if base <= 0 {
		base = 1
	}
	o := &sceneObject{
		node:      &node{asset: a},
		baseScale: base,
		zoom:      1,
	}
	o.node.transform = o.modelMatrix()
	c.object = o
	c.renderer.AddNode(c.scene, o.node)
	c.log.Info("model loaded", "meshes", len(a.meshes), "vertices", a.vertices())
}

func (c *controller) detach() {
	if c.object == nil {
		return
	}
	n := c.object.node
	c.renderer.RemoveNode(c.scene, n)
	c.renderer.ReleaseGeometry(n)
	c.renderer.ReleaseMaterial(n)
	c.object = nil
}

func (c *controller) Progress(f float64) {
	c.log.Info("loading model", "progress", f)
}

func (c *controller) LoadFailed(err error) {
	c.loadErr = err
	c.log.Error("failed to load model", "error", err)
}

// LoadError returns the error of the last load if it failed.
func (c *controller) LoadError() error {
	return c.loadErr
}

func (c *controller) RenderFrame() {
	if c.object != nil {
		c.object.node.transform = c.object.modelMatrix()
	}
	c.renderer.RenderFrame(c.scene, c.view)
}

func (c *controller) Zoom() float32 {
	if c.object == nil {
		return 1
	}
	return c.object.zoom
}

func (c *controller) SetZoom(z float32) bool {
	if c.object == nil {
		return false
	}
	c.setZoom(z)
	return true
}

func (c *controller) RotationY() float32 {
	if c.object == nil {
		return 0
	}
	return c.object.rotationY
}

func (c *controller) SetRotationY(r float32) bool {
	if c.object == nil {
		return false
	}
	c.object.rotationY = r
	return true
}

func (c *controller) Camera() mat.Vec3 {
	return c.view.position
}

func (c *controller) SetCameraY(y float32) {
	c.view.position[1] = y
}

// ResetView restores the initial zoom, rotation and camera position.
func (c *controller) ResetView() {
	c.view.reset(c.cfg)
	if c.object != nil {
		c.object.zoom = 1
		c.object.rotationY = 0
	}
}

func (c *controller) Bounds() (mat.Vec3, mat.Vec3, bool) {
	if c.object == nil {
		return mat.Vec3{}, mat.Vec3{}, false
	}
	min, max, err := c.object.node.asset.bounds()
	if err != nil {
		return mat.Vec3{}, mat.Vec3{}, false
	}
	return min, max, true
}
