package main

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestViewport(t *testing.T) {
	cfg := testConfig()
	v := newViewport(cfg)

	if p := v.position; p != (mat.Vec3{0, 0, defaultInitialCameraDistance}) {
		t.Errorf("Expected initial position, got %v", p)
	}
	if !v.resize(640, 480) {
		t.Error("Resize must report a change")
	}
	if v.resize(640, 480) {
		t.Error("Resize to the same size must not report a change")
	}
	if !near(float32(v.aspect), 640.0/480.0) {
		t.Errorf("Expected aspect %f, got %f", 640.0/480.0, v.aspect)
	}
	v.resize(640, 0)
	if !near(float32(v.aspect), 640.0/480.0) {
		t.Errorf("Aspect must be kept on zero height, got %f", v.aspect)
	}

	v.move(0.5)
	m := v.viewMatrix()
	if out := m.TransformAffine(mat.Vec3{0, 0.5, 0}); !nearVec3(mat.Vec3{0, 0, -defaultInitialCameraDistance}, out) {
		t.Errorf("Expected point in front of the camera, got %v", out)
	}
	v.reset(cfg)
	if y := v.position[1]; y != 0 {
		t.Errorf("Expected reset camera, got y=%f", y)
	}
}

func TestCursorFor(t *testing.T) {
	testCases := map[string]struct {
		state      controllerState
		hasObject  bool
		loadFailed bool
		expected   cursor
	}{
		"Loading":    {state: stateIdle, expected: cursorProgress},
		"LoadFailed": {state: stateIdle, loadFailed: true, expected: cursorDefault},
		"Idle":       {state: stateIdle, hasObject: true, expected: cursorGrab},
		"Rotating":   {state: stateRotating, hasObject: true, expected: cursorGrabbing},
		"Panning":    {state: statePanning, hasObject: true, expected: cursorNSResize},
		"Pinch":      {state: statePinchZooming, hasObject: true, expected: cursorZoomIn},
		"KeptObject": {state: stateIdle, hasObject: true, loadFailed: true, expected: cursorGrab},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if c := cursorFor(tt.state, tt.hasObject, tt.loadFailed); c != tt.expected {
				t.Errorf("Expected: %s, got: %s", tt.expected, c)
			}
		})
	}
}
