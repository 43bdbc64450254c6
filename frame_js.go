package main

import (
	"syscall/js"
)

// animationFrameRequester schedules frames with requestAnimationFrame and
// delivers the callbacks through ch, so that they run on the viewer's
// event loop goroutine.
func animationFrameRequester(ch chan<- func()) func(cb func()) func() {
	return func(cb func()) func() {
		var fn js.Func
		fn = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			fn.Release()
			ch <- cb
			return nil
		})
		id := js.Global().Call("requestAnimationFrame", fn)
		return func() {
			js.Global().Call("cancelAnimationFrame", id)
			fn.Release()
		}
	}
}
