package main

import (
	"bytes"
	"io/fs"
	"net/url"
	"time"
)

// httpFS resolves file names relative to a base URL, so that buffers
// referenced by a .gltf file are fetched next to it.
type httpFS struct {
	fetcher fetcher
	base    *url.URL
}

func newHTTPFS(f fetcher, base string) (*httpFS, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	return &httpFS{fetcher: f, base: u}, nil
}

func (h *httpFS) ReadFile(name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	b, err := h.fetcher.Fetch(h.base.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return b, nil
}

func (h *httpFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	b, err := h.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &httpFile{
		Reader: bytes.NewReader(b),
		info:   httpFileInfo{name: name, size: int64(len(b))},
	}, nil
}

type httpFile struct {
	*bytes.Reader
	info httpFileInfo
}

func (f *httpFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *httpFile) Close() error               { return nil }

type httpFileInfo struct {
	name string
	size int64
}

func (i httpFileInfo) Name() string       { return i.name }
func (i httpFileInfo) Size() int64        { return i.size }
func (i httpFileInfo) Mode() fs.FileMode  { return 0444 }
func (i httpFileInfo) ModTime() time.Time { return time.Time{} }
func (i httpFileInfo) IsDir() bool        { return false }
func (i httpFileInfo) Sys() interface{}   { return nil }
