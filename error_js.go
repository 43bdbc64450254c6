package main

import (
	"errors"
	"syscall/js"
)

// errorToJS converts err into a JS Error. A failed model load also carries
// the model URL, so that page scripts can report which file was broken.
func errorToJS(err error) js.Value {
	e := js.Global().Get("Error").New(err.Error())
	var loadErr *AssetLoadError
	if errors.As(err, &loadErr) {
		e.Set("name", "AssetLoadError")
		e.Set("url", loadErr.URL)
	}
	return e
}
