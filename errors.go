package main

import (
	"errors"
	"fmt"
)

var (
	errInvalidConfig = errors.New("invalid config")
	errUnknownPreset = errors.New("unknown preset")
	errNoTriangles   = errors.New("no triangles found in gltf")
)

// AssetLoadError is reported when the model could not be fetched or parsed.
// The viewer keeps working without the new model.
type AssetLoadError struct {
	URL string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.URL, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}
