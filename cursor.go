package main

type cursor string

const (
	cursorDefault  cursor = "default"
	cursorGrab     cursor = "grab"
	cursorGrabbing cursor = "grabbing"
	cursorNSResize cursor = "ns-resize"
	cursorZoomIn   cursor = "zoom-in"
	cursorProgress cursor = "progress"
)

func cursorFor(state controllerState, hasObject, loadFailed bool) cursor {
	if !hasObject {
		if loadFailed {
			return cursorDefault
		}
		return cursorProgress
	}
	switch state {
	case stateRotating:
		return cursorGrabbing
	case statePanning:
		return cursorNSResize
	case statePinchZooming:
		return cursorZoomIn
	case stateIdle, stateDisambiguating:
		return cursorGrab
	default:
		return cursorDefault
	}
}
