package main

import (
	"io"
	"log/slog"
)

func newLogger(w io.Writer, level slog.Level, viewer string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("viewer", viewer)
}
