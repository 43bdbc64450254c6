package main

import (
	"html"
	"strings"
	"syscall/js"
)

// logWriter appends log lines to the #log element of the page, or to the
// browser console if the page has none.
type logWriter struct {
	div js.Value
}

func newLogWriter(doc js.Value) *logWriter {
	return &logWriter{div: doc.Call("getElementById", "log")}
}

func (w *logWriter) Write(b []byte) (int, error) {
	msg := strings.TrimRight(string(b), "\n")
	if w.div.IsNull() || w.div.IsUndefined() {
		js.Global().Get("console").Call("log", msg)
		return len(b), nil
	}
	s := w.div.Get("innerHTML").String()
	w.div.Set("innerHTML", s+html.EscapeString(msg)+"<br/>")
	return len(b), nil
}
