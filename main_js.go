package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall/js"
)

const (
	defaultCanvasID = "viewerCanvas"
	defaultPreset   = "model-1"
)

func main() {
	doc := js.Global().Get("document")
	w := newLogWriter(doc)
	log := newLogger(w, slog.LevelInfo, "main")

	suppressPlatformGestures(doc)

	var apps []*viewerApp
	for i, canvas := range viewerCanvases(doc) {
		name := canvas.Call("getAttribute", "data-viewer")
		source := defaultPreset
		if name.Type() == js.TypeString && name.String() != "" {
			source = name.String()
		}
		cfg, err := loadViewerConfig(source)
		if err != nil {
			log.Error("failed to load config", "source", source, "error", err)
			continue
		}
		level, _ := cfg.logLevel()
		app, err := newViewerApp(canvas, cfg, newLogger(w, level, fmt.Sprintf("%d:%s", i, source)))
		if err != nil {
			log.Error("failed to initialize viewer", "source", source, "error", err)
			continue
		}
		apps = append(apps, app)
		go app.Run()
	}
	if len(apps) == 0 {
		log.Warn("no viewer is running", "presets", presetNames())
	}

	js.Global().Set("gltfViewerConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			return newPromise(func() (interface{}, error) {
				if len(args) != 2 {
					return nil, errArgumentNumber
				}
				i := args[0].Int()
				if i < 0 || i >= len(apps) {
					return nil, errors.New("viewer index out of range")
				}
				return apps[i].Command(args[1].String())
			})
		}),
	)

	select {}
}

func viewerCanvases(doc js.Value) []js.Value {
	var canvases []js.Value
	list := doc.Call("querySelectorAll", "canvas[data-viewer]")
	for i := 0; i < list.Get("length").Int(); i++ {
		canvases = append(canvases, list.Call("item", i))
	}
	if len(canvases) == 0 {
		if c := doc.Call("getElementById", defaultCanvasID); !c.IsNull() {
			canvases = append(canvases, c)
		}
	}
	return canvases
}

// loadViewerConfig reads a YAML file if source looks like one, or an embedded
// preset otherwise.
func loadViewerConfig(source string) (*viewerConfig, error) {
	if !strings.HasSuffix(source, ".yaml") && !strings.HasSuffix(source, ".yml") {
		return presetConfig(source)
	}
	b, err := newFetcher().Fetch(source, nil)
	if err != nil {
		return nil, err
	}
	return parseConfig(b)
}

func newPromise(fn func() (interface{}, error)) js.Value {
	var handler js.Func
	handler = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resolve, reject := args[0], args[1]
		go func() {
			res, err := fn()
			if err != nil {
				reject.Invoke(errorToJS(err))
				return
			}
			resolve.Invoke(res)
		}()
		return nil
	})
	defer handler.Release()
	return js.Global().Get("Promise").New(handler)
}
