package main

import (
	"reflect"
	"testing"
)

type recordingHandler struct {
	calls []string
	last  []contact
}

func (h *recordingHandler) PressStart(points []contact) {
	h.calls = append(h.calls, "press")
	h.last = points
}

func (h *recordingHandler) Move(points []contact) {
	h.calls = append(h.calls, "move")
	h.last = points
}

func (h *recordingHandler) Release() {
	h.calls = append(h.calls, "release")
	h.last = nil
}

func TestPointerTracker(t *testing.T) {
	t.Run("SinglePointer", func(t *testing.T) {
		h := &recordingHandler{}
		tr := newPointerTracker(h)
		tr.Down(1, true, contact{1, 2})
		tr.Move(1, contact{3, 4})
		tr.Move(2, contact{5, 6})
		tr.Up(2)
		tr.Up(1)

		expected := []string{"press", "move", "release"}
		if !reflect.DeepEqual(expected, h.calls) {
			t.Errorf("Expected calls: %v, got: %v", expected, h.calls)
		}
		if n := tr.Len(); n != 0 {
			t.Errorf("Expected no pointer, got %d", n)
		}
	})
	t.Run("PrimaryFirst", func(t *testing.T) {
		h := &recordingHandler{}
		tr := newPointerTracker(h)
		tr.Down(2, false, contact{20, 0})
		tr.Down(1, true, contact{10, 0})

		expected := []contact{{10, 0}, {20, 0}}
		if !reflect.DeepEqual(expected, h.last) {
			t.Errorf("Expected contacts: %v, got: %v", expected, h.last)
		}
		tr.Move(2, contact{30, 0})
		expected = []contact{{10, 0}, {30, 0}}
		if !reflect.DeepEqual(expected, h.last) {
			t.Errorf("Expected contacts: %v, got: %v", expected, h.last)
		}
	})
	t.Run("LiftOneOfTwo", func(t *testing.T) {
		h := &recordingHandler{}
		tr := newPointerTracker(h)
		tr.Down(1, true, contact{0, 0})
		tr.Down(2, false, contact{100, 0})
		tr.Up(1)

		expected := []string{"press", "press", "press"}
		if !reflect.DeepEqual(expected, h.calls) {
			t.Errorf("Expected calls: %v, got: %v", expected, h.calls)
		}
		if !reflect.DeepEqual([]contact{{100, 0}}, h.last) {
			t.Errorf("Expected remaining contact, got: %v", h.last)
		}
		if n := tr.Len(); n != 1 {
			t.Errorf("Expected 1 pointer, got %d", n)
		}
	})
}

func TestPointerTracker_Controller(t *testing.T) {
	c, _ := newTestController(t, testConfig())
	c.SetAsset(testAsset("a"))
	tr := newPointerTracker(c)

	tr.Down(1, true, contact{0, 0})
	tr.Down(2, false, contact{100, 0})
	if s := c.State(); s != statePinchZooming {
		t.Fatalf("Expected %v, got %v", statePinchZooming, s)
	}
	tr.Move(2, contact{150, 0})
	if z := c.Zoom(); !near(z, 1.5) {
		t.Errorf("Expected zoom 1.5, got %f", z)
	}

	// Lifting one finger restarts a single contact gesture.
	tr.Up(2)
	if s := c.State(); s != stateDisambiguating {
		t.Fatalf("Expected %v, got %v", stateDisambiguating, s)
	}
	tr.Move(1, contact{10, 0})
	if s := c.State(); s != stateRotating {
		t.Errorf("Expected %v, got %v", stateRotating, s)
	}
	tr.Up(1)
	if s := c.State(); s != stateIdle {
		t.Errorf("Expected %v, got %v", stateIdle, s)
	}
}
