package main

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
)

type pointerInput struct {
	kind    pointerKind
	id      int
	primary bool
	p       contact
}

func toPointerInput(kind pointerKind, e webgl.PointerEvent) pointerInput {
	return pointerInput{
		kind:    kind,
		id:      e.PointerId,
		primary: e.IsPrimary,
		p:       contact{X: float32(e.OffsetX), Y: float32(e.OffsetY)},
	}
}

func (a *viewerApp) bindPointerEvents() {
	c := a.gl.Canvas
	c.OnPointerDown(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		// Keep receiving moves when the pointer leaves the canvas.
		a.canvas.Call("setPointerCapture", e.PointerId)
		a.chPointer <- toPointerInput(pointerDown, e)
	})
	c.OnPointerMove(func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		a.chPointer <- toPointerInput(pointerMove, e)
	})
	up := func(e webgl.PointerEvent) {
		e.PreventDefault()
		e.StopPropagation()
		a.chPointer <- toPointerInput(pointerUp, e)
	}
	c.OnPointerUp(up)
	c.OnPointerOut(up)
	a.canvas.Call("addEventListener", "pointercancel",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			a.chPointer <- pointerInput{kind: pointerUp, id: args[0].Get("pointerId").Int()}
			return nil
		}),
	)
	c.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		a.chWheel <- e.DeltaY
	})
	c.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})
}

// suppressPlatformGestures disables the browser's own pinch and rotate
// handling, so that pinch on the canvas only zooms the model.
func suppressPlatformGestures(doc js.Value) {
	prevent := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		args[0].Call("preventDefault")
		return nil
	})
	opts := map[string]interface{}{"passive": false}
	for _, name := range []string{"gesturestart", "gesturechange", "gestureend"} {
		doc.Call("addEventListener", name, prevent, opts)
	}
}
