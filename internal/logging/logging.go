// Package logging writes structured logs to a file. The terminal belongs to
// the viewer while it runs, so nothing is ever logged to stdout or stderr.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	mu     sync.Mutex
	file   *os.File
	logger = slog.New(nopHandler{})
)

// Init opens path for appending and routes L() to it.
func Init(path string, level slog.Level) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return err
	}

	mu.Lock()
	if file != nil {
		file.Close()
	}
	file = f
	mu.Unlock()

	Use(f, level)
	L().Info("noisefield started")
	return nil
}

// Use routes L() to w. Tests use it with a buffer.
func Use(w io.Writer, level slog.Level) {
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Close logs a stop line, closes the file and restores the silent logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		logger = slog.New(nopHandler{})
		return
	}
	logger.Info("noisefield stopped")
	file.Close()
	file = nil
	logger = slog.New(nopHandler{})
}

// L returns the active logger. It never returns nil.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
