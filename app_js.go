package main

import (
	"log/slog"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

type consoleResult struct {
	out string
	err error
}

type consoleRequest struct {
	line string
	res  chan consoleResult
}

// viewerApp runs one viewer. All of its state is touched only by Run.
type viewerApp struct {
	canvas  js.Value
	gl      *webgl.WebGL
	cfg     *viewerConfig
	ctrl    *controller
	tracker *pointerTracker
	loop    *frameLoop
	console *console
	log     *slog.Logger
	cursor  cursor
	loadErr error

	chPointer     chan pointerInput
	chWheel       chan float64
	chResize      chan struct{}
	chVisibility  chan bool
	chContextLost chan struct{}
	chTask        chan func()
	chFrame       chan func()
	chConsole     chan consoleRequest
}

func newViewerApp(canvas js.Value, cfg *viewerConfig, log *slog.Logger) (*viewerApp, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, err
	}
	showDebugInfo(gl, log)

	r, err := newWebGLRenderer(gl)
	if err != nil {
		return nil, err
	}
	ctrl := newController(cfg, r, log)

	a := &viewerApp{
		canvas:  canvas,
		gl:      gl,
		cfg:     cfg,
		ctrl:    ctrl,
		tracker: newPointerTracker(ctrl),
		console: &console{ctrl: ctrl},
		log:     log,

		chPointer:     make(chan pointerInput),
		chWheel:       make(chan float64),
		chResize:      make(chan struct{}, 1),
		chVisibility:  make(chan bool, 1),
		chContextLost: make(chan struct{}, 1),
		chTask:        make(chan func()),
		chFrame:       make(chan func()),
		chConsole:     make(chan consoleRequest),
	}
	a.loop = &frameLoop{
		requestFrame: animationFrameRequester(a.chFrame),
		onFrame:      ctrl.RenderFrame,
	}

	canvas.Get("style").Set("touchAction", "none")
	a.bindPointerEvents()
	a.bindWindowEvents()
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		e.PreventDefault()
		select {
		case a.chContextLost <- struct{}{}:
		default:
		}
	})
	return a, nil
}

func (a *viewerApp) bindWindowEvents() {
	js.Global().Call("addEventListener", "resize",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			select {
			case a.chResize <- struct{}{}:
			default:
			}
			return nil
		}),
	)
	doc := js.Global().Get("document")
	doc.Call("addEventListener", "visibilitychange",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			visible := doc.Get("visibilityState").String() == "visible"
			select {
			case a.chVisibility <- visible:
			default:
				// Drop the stale state and keep the latest one.
				select {
				case <-a.chVisibility:
				default:
				}
				a.chVisibility <- visible
			}
			return nil
		}),
	)
}

func (a *viewerApp) resize() {
	a.ctrl.Resize(a.gl.Canvas.ClientWidth(), a.gl.Canvas.ClientHeight())
}

// Command runs a console line on the event loop goroutine.
func (a *viewerApp) Command(line string) (string, error) {
	req := consoleRequest{line: line, res: make(chan consoleResult, 1)}
	a.chConsole <- req
	res := <-req.res
	return res.out, res.err
}

func (a *viewerApp) Run() {
	a.resize()
	a.ctrl.Load(&queuedLoader{
		assetLoader: &gltfLoader{fetcher: newFetcher()},
		tasks:       a.chTask,
	}, a.cfg.ModelURL)
	a.loop.Start()
	a.updateCursor()

	for {
		select {
		case e := <-a.chPointer:
			switch e.kind {
			case pointerDown:
				a.tracker.Down(e.id, e.primary, e.p)
			case pointerMove:
				a.tracker.Move(e.id, e.p)
			case pointerUp:
				a.tracker.Up(e.id)
			}
		case d := <-a.chWheel:
			a.ctrl.Wheel(d)
		case <-a.chResize:
			a.resize()
		case visible := <-a.chVisibility:
			if visible {
				a.loop.Start()
			} else {
				a.loop.Stop()
			}
		case <-a.chContextLost:
			a.log.Error("stopped rendering", "error", errContextLost)
			a.loop.Stop()
		case fn := <-a.chTask:
			fn()
		case fn := <-a.chFrame:
			fn()
		case req := <-a.chConsole:
			out, err := a.console.Run(req.line)
			req.res <- consoleResult{out: out, err: err}
		}
		a.updateCursor()
		a.notifyLoadError()
	}
}

// notifyLoadError dispatches a "loaderror" event on the canvas once per
// failed load. The event detail is the JS Error.
func (a *viewerApp) notifyLoadError() {
	err := a.ctrl.LoadError()
	if err == nil || err == a.loadErr {
		a.loadErr = err
		return
	}
	a.loadErr = err
	ev := js.Global().Get("CustomEvent").New("loaderror", map[string]interface{}{
		"detail": errorToJS(err),
	})
	a.canvas.Call("dispatchEvent", ev)
}
