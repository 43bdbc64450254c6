package main

func (a *viewerApp) SetCursor(c cursor) {
	if c == a.cursor {
		return
	}
	a.cursor = c
	a.canvas.Get("style").Set("cursor", string(c))
}

func (a *viewerApp) updateCursor() {
	a.SetCursor(cursorFor(a.ctrl.State(), a.ctrl.HasObject(), a.ctrl.LoadError() != nil))
}
