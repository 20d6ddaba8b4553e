package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
)

// rotatingWriter hands writes to the current log file and reopens it on
// demand, so an external rotation (mv + SIGHUP) does not leave the process
// writing to the renamed file.
type rotatingWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Write(p)
}

func (w *rotatingWriter) reopen() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w.file.Close()
	w.file = f
	return nil
}

// Init installs the default JSON logger. Without a file path logs go to
// stderr; with one, the file is created (parents included) and reopened on
// SIGHUP for log rotation:
//
//	mv newt.log newt.bak && kill -HUP <pid>
func Init(level, file string) {
	writer := io.Writer(os.Stderr)

	if file != "" {
		if w, err := openLogFile(file); err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", file, err)
		} else {
			writer = w
			watchRotation(w)
		}
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: LevelFromString(level),
	})
	slog.SetDefault(slog.New(handler))
}

func openLogFile(path string) (*rotatingWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &rotatingWriter{path: path, file: f}, nil
}

func watchRotation(w *rotatingWriter) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP)
	go func() {
		for range sigs {
			if err := w.reopen(); err != nil {
				fmt.Fprintf(os.Stderr, "could not reopen log file '%s': %v\n", w.path, err)
			}
		}
	}()
}

// LevelFromString maps a config level name to a slog level; unknown names
// fall back to error.
func LevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
