package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps debug|info|warn|error onto a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// LogWriter returns the log destination: a rotating file when LogFile is
// set, otherwise fallback. The returned closer is never nil.
func (c Config) LogWriter(fallback io.Writer) (io.Writer, io.Closer) {
	if c.LogFile == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return fallback, nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return lj, lj
}

// NewLogger builds the slog text logger used by every observer.
func (c Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer) {
	w, closer := c.LogWriter(fallback)
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// TerminalWriter forwards log lines to a terminal stream until muted. The
// TUI mutes it for as long as it owns the screen.
type TerminalWriter struct {
	mu    sync.Mutex
	out   io.Writer
	muted bool
}

func NewTerminalWriter(out io.Writer) *TerminalWriter {
	return &TerminalWriter{out: out}
}

func (t *TerminalWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.muted {
		return len(p), nil
	}
	return t.out.Write(p)
}

// Mute drops writes until the returned restore func is called.
func (t *TerminalWriter) Mute() (restore func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = true
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.muted = false
	}
}
