package main

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func assetWithPositions(t *testing.T, name string, pp ...mat.Vec3) *asset {
	t.Helper()
	a := testAsset(name)
	a.meshes[0].positions = newVec3Cloud(len(pp))
	a.meshes[0].normals = newVec3Cloud(len(pp))
	it, err := a.meshes[0].positions.Vec3Iterator()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pp {
		it.SetVec3(p)
		it.Incr()
	}
	return a
}

func TestConsole(t *testing.T) {
	testCases := map[string]struct {
		loaded   bool
		lines    []string
		expected string
		err      error
	}{
		"Zoom": {
			loaded:   true,
			lines:    []string{"zoom 1.5", "zoom"},
			expected: "1.500",
		},
		"ZoomClamped": {
			loaded:   true,
			lines:    []string{"zoom 10"},
			expected: "2.000",
		},
		"ZoomWithoutModel": {
			lines: []string{"zoom 1.5"},
			err:   errNoObject,
		},
		"Rotation": {
			loaded:   true,
			lines:    []string{"rotation 0.25"},
			expected: "0.250",
		},
		"Camera": {
			lines:    []string{"camera 0.5"},
			expected: "0.000 0.500 2.000",
		},
		"Size": {
			lines:    []string{"size"},
			expected: "800.000 600.000 1.333",
		},
		"Bounds": {
			loaded:   true,
			lines:    []string{"bounds"},
			expected: "-1.000 0.000 0.000\n1.000 2.000 0.500",
		},
		"BoundsWithoutModel": {
			lines: []string{"bounds"},
			err:   errNoObject,
		},
		"Reset": {
			loaded:   true,
			lines:    []string{"zoom 1.5", "rotation 1", "camera 1", "reset", "zoom"},
			expected: "1.000",
		},
		"Empty": {
			lines: []string{""},
		},
		"InvalidCommand": {
			lines: []string{"select_range 1"},
			err:   errInvalidCommand,
		},
		"ArgumentNumber": {
			loaded: true,
			lines:  []string{"zoom 1 2"},
			err:    errArgumentNumber,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			ctrl, _ := newTestController(t, testConfig())
			if tt.loaded {
				ctrl.SetAsset(assetWithPositions(t, "a",
					mat.Vec3{-1, 0, 0}, mat.Vec3{1, 2, 0}, mat.Vec3{0, 1, 0.5},
				))
			}
			c := &console{ctrl: ctrl}
			var out string
			var err error
			for _, l := range tt.lines {
				out, err = c.Run(l)
			}
			if err != tt.err {
				t.Fatalf("Expected error: %v, got: %v", tt.err, err)
			}
			if out != tt.expected {
				t.Errorf("Expected output:\n%s\nGot:\n%s", tt.expected, out)
			}
		})
	}
}

func TestConsole_Reset(t *testing.T) {
	ctrl, _ := newTestController(t, testConfig())
	ctrl.SetAsset(testAsset("a"))
	c := &console{ctrl: ctrl}

	for _, l := range []string{"zoom 1.5", "rotation 1", "camera 1", "reset"} {
		if _, err := c.Run(l); err != nil {
			t.Fatalf("Unexpected error on %q: %v", l, err)
		}
	}
	if z := ctrl.Zoom(); z != 1 {
		t.Errorf("Expected zoom 1, got %f", z)
	}
	if r := ctrl.RotationY(); r != 0 {
		t.Errorf("Expected rotation 0, got %f", r)
	}
	if p := ctrl.Camera(); p != (mat.Vec3{0, 0, defaultInitialCameraDistance}) {
		t.Errorf("Expected initial camera position, got %v", p)
	}
}
