package main

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
)

type jsFetcher struct{}

func newFetcher() fetcher {
	return jsFetcher{}
}

// Fetch must not be called from a JS callback since it waits on promises.
func (jsFetcher) Fetch(path string, progress func(loaded, total int64)) ([]byte, error) {
	res, err := await(js.Global().Call("fetch", path))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}
	if !res.Get("ok").Bool() {
		return nil, fmt.Errorf("failed to fetch file: %s", res.Get("statusText").String())
	}

	total := int64(-1)
	if cl := res.Get("headers").Call("get", "Content-Length"); cl.Type() == js.TypeString {
		if n, err := strconv.ParseInt(cl.String(), 10, 64); err == nil {
			total = n
		}
	}

	body := res.Get("body")
	if body.IsNull() || body.IsUndefined() {
		buf, err := await(res.Call("arrayBuffer"))
		if err != nil {
			return nil, errors.New("failed to handle received data")
		}
		array := js.Global().Get("Uint8Array").New(buf)
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		return b, nil
	}

	reader := body.Call("getReader")
	var b []byte
	for {
		chunk, err := await(reader.Call("read"))
		if err != nil {
			return nil, errors.New("failed to handle received data")
		}
		if chunk.Get("done").Bool() {
			break
		}
		value := chunk.Get("value")
		buf := make([]byte, value.Get("byteLength").Int())
		js.CopyBytesToGo(buf, value)
		b = append(b, buf...)
		if progress != nil {
			progress(int64(len(b)), total)
		}
	}
	return b, nil
}

func await(promise js.Value) (js.Value, error) {
	chVal := make(chan js.Value, 1)
	chErr := make(chan error, 1)
	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chVal <- args[0]
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- errors.New(args[0].Call("toString").String())
		return nil
	})
	defer onReject.Release()

	promise.Call("then", onResolve, onReject)
	select {
	case v := <-chVal:
		return v, nil
	case err := <-chErr:
		return js.Undefined(), err
	}
}
