package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelInfo, "0:model-1")

	log.Debug("hidden")
	log.Info("model loaded", "vertices", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message must be filtered, got: %s", out)
	}
	for _, s := range []string{"msg=\"model loaded\"", "viewer=0:model-1", "vertices=3"} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected %q in log, got: %s", s, out)
		}
	}
}
