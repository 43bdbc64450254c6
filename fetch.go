//go:build !js

package main

import (
	"fmt"
	"io"
	"net/http"
)

type httpFetcher struct {
	client *http.Client
}

func newFetcher() fetcher {
	return &httpFetcher{client: http.DefaultClient}
}

func (f *httpFetcher) Fetch(url string, progress func(loaded, total int64)) ([]byte, error) {
	res, err := f.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch file: %s", res.Status)
	}
	return io.ReadAll(&progressReader{
		r:        res.Body,
		total:    res.ContentLength,
		progress: progress,
	})
}

type progressReader struct {
	r        io.Reader
	loaded   int64
	total    int64
	progress func(loaded, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.loaded += int64(n)
		if p.progress != nil {
			p.progress(p.loaded, p.total)
		}
	}
	return n, err
}
