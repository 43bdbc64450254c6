package main

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const externalGLTF = `{
  "asset": {"version": "2.0"},
  "buffers": [{"uri": "model.bin", "byteLength": 36}],
  "bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 36}],
  "accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
  "meshes": [{"name": "triangle", "primitives": [{"attributes": {"POSITION": 0}}]}],
  "nodes": [{"mesh": 0}],
  "scenes": [{"nodes": [0]}]
}`

func newModelServer(t *testing.T) *httptest.Server {
	t.Helper()
	bin, err := base64.StdEncoding.DecodeString(triangleBuffer)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/models/model.gltf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "model/gltf+json")
		w.Write([]byte(externalGLTF))
	})
	mux.HandleFunc("/models/model.bin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(bin)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

type loadResult struct {
	asset    *asset
	progress []float64
	err      error
}

func loadSync(t *testing.T, l assetLoader, url string) loadResult {
	t.Helper()
	done := make(chan loadResult, 1)
	var progress []float64
	l.Load(url,
		func(a *asset) { done <- loadResult{asset: a, progress: progress} },
		func(f float64) { progress = append(progress, f) },
		func(err error) { done <- loadResult{err: err, progress: progress} },
	)
	select {
	case res := <-done:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout")
	}
	return loadResult{}
}

func TestGLTFLoader(t *testing.T) {
	ts := newModelServer(t)
	l := &gltfLoader{fetcher: newFetcher()}

	t.Run("ExternalBuffer", func(t *testing.T) {
		res := loadSync(t, l, ts.URL+"/models/model.gltf")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if n := res.asset.vertices(); n != 3 {
			t.Errorf("Expected 3 vertices, got %d", n)
		}
		if len(res.progress) == 0 {
			t.Fatal("Progress must be reported")
		}
		if p := res.progress[len(res.progress)-1]; p != 1 {
			t.Errorf("Expected final progress 1, got %f", p)
		}
	})
	t.Run("NotFound", func(t *testing.T) {
		url := ts.URL + "/models/missing.gltf"
		res := loadSync(t, l, url)
		var loadErr *AssetLoadError
		if !errors.As(res.err, &loadErr) {
			t.Fatalf("Expected AssetLoadError, got %v", res.err)
		}
		if loadErr.URL != url {
			t.Errorf("Expected url: %s, got: %s", url, loadErr.URL)
		}
		if !strings.Contains(loadErr.Error(), "404") {
			t.Errorf("Error must contain the status, got: %v", loadErr)
		}
	})
}

func TestQueuedLoader(t *testing.T) {
	tasks := make(chan func())
	l := &queuedLoader{
		assetLoader: &syncLoader{a: testAsset("a")},
		tasks:       tasks,
	}
	var got *asset
	go l.Load("a.gltf", func(a *asset) { got = a }, func(float64) {}, func(error) {})

	for i := 0; i < 2; i++ {
		select {
		case fn := <-tasks:
			fn()
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout")
		}
	}
	if got == nil || got.meshes[0].name != "a" {
		t.Errorf("Callback must be called through the task queue, got %v", got)
	}
}

type recordingFetcher struct {
	urls []string
}

func (f *recordingFetcher) Fetch(url string, progress func(loaded, total int64)) ([]byte, error) {
	f.urls = append(f.urls, url)
	return []byte{0}, nil
}

func TestHTTPFS_Resolve(t *testing.T) {
	testCases := map[string]struct {
		name     string
		expected string
	}{
		"Relative": {
			name:     "scene.bin",
			expected: "https://example.com/models/scene.bin",
		},
		"Subdirectory": {
			name:     "buffers/scene.bin",
			expected: "https://example.com/models/buffers/scene.bin",
		},
		"Absolute": {
			name:     "https://cdn.example.com/data/scene.bin",
			expected: "https://cdn.example.com/data/scene.bin",
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			f := &recordingFetcher{}
			fsys, err := newHTTPFS(f, "https://example.com/models/scene.gltf")
			if err != nil {
				t.Fatal(err)
			}
			if _, err := fsys.ReadFile(tt.name); err != nil {
				t.Fatal(err)
			}
			if len(f.urls) != 1 || f.urls[0] != tt.expected {
				t.Errorf("Expected fetch of %s, got: %v", tt.expected, f.urls)
			}
		})
	}
}

func TestHTTPFS(t *testing.T) {
	ts := newModelServer(t)
	fsys, err := newHTTPFS(newFetcher(), ts.URL+"/models/model.gltf")
	if err != nil {
		t.Fatal(err)
	}
	b, err := fsys.ReadFile("model.bin")
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 36 {
		t.Errorf("Expected 36 bytes, got %d", len(b))
	}
	f, err := fsys.Open("model.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if st, _ := f.Stat(); st.Size() != 36 {
		t.Errorf("Expected size 36, got %d", st.Size())
	}
	if _, err := fsys.Open("../model.bin"); err == nil {
		t.Error("Invalid path must be rejected")
	}
	if _, err := fsys.ReadFile("missing.bin"); err == nil {
		t.Error("Expected error on missing file")
	}
}
