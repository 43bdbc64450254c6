package main

// frameLoop calls onFrame once per frame between Start and Stop.
type frameLoop struct {
	requestFrame func(cb func()) (cancel func())
	onFrame      func()

	cancel func()
	gen    int
}

func (l *frameLoop) Start() {
	if l.cancel != nil {
		return
	}
	l.arm()
}

func (l *frameLoop) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.cancel = nil
}

func (l *frameLoop) Running() bool {
	return l.cancel != nil
}

func (l *frameLoop) arm() {
	l.gen++
	gen := l.gen
	l.cancel = l.requestFrame(func() { l.fire(gen) })
}

func (l *frameLoop) fire(gen int) {
	// Frames requested before a restart are stale.
	if l.cancel == nil || gen != l.gen {
		return
	}
	l.onFrame()
	if l.cancel != nil && gen == l.gen {
		l.arm()
	}
}
