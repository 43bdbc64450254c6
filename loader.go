package main

import (
	"bytes"
)

type fetcher interface {
	// Fetch downloads url. progress may be nil; total is negative if unknown.
	Fetch(url string, progress func(loaded, total int64)) ([]byte, error)
}

type assetLoader interface {
	Load(url string, onSuccess func(*asset), onProgress func(float64), onError func(error))
}

// gltfLoader fetches and decodes a glTF model in the background.
// Callbacks are called from the loading goroutine.
type gltfLoader struct {
	fetcher fetcher
}

func (l *gltfLoader) Load(url string, onSuccess func(*asset), onProgress func(float64), onError func(error)) {
	go func() {
		a, err := l.load(url, onProgress)
		if err != nil {
			onError(&AssetLoadError{URL: url, Err: err})
			return
		}
		onSuccess(a)
	}()
}

func (l *gltfLoader) load(url string, onProgress func(float64)) (*asset, error) {
	b, err := l.fetcher.Fetch(url, func(loaded, total int64) {
		if total > 0 && onProgress != nil {
			onProgress(float64(loaded) / float64(total))
		}
	})
	if err != nil {
		return nil, err
	}
	fsys, err := newHTTPFS(l.fetcher, url)
	if err != nil {
		return nil, err
	}
	return decodeGLTF(bytes.NewReader(b), fsys)
}

// queuedLoader hands the callbacks of the wrapped loader to tasks, so that
// they run on the goroutine which owns the controller.
type queuedLoader struct {
	assetLoader
	tasks chan<- func()
}

func (l *queuedLoader) Load(url string, onSuccess func(*asset), onProgress func(float64), onError func(error)) {
	l.assetLoader.Load(url,
		func(a *asset) { l.tasks <- func() { onSuccess(a) } },
		func(f float64) { l.tasks <- func() { onProgress(f) } },
		func(err error) { l.tasks <- func() { onError(err) } },
	)
}
