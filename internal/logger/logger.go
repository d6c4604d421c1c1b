package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the scene log file, relative to the working directory.
const DefaultPath = "logs/scene.txt"

// Logger stores lines in memory and appends them to a file on disk. When a mirror writer is
// set, every stamped line is also written there (the CLI commands mirror to stderr).
type Logger struct {
	mu     sync.Mutex
	path   string
	lines  []string
	mirror io.Writer
	now    func() time.Time
}

// New returns a Logger writing to DefaultPath and ensures the logs directory exists.
func New() *Logger {
	return NewAt(DefaultPath)
}

// NewAt returns a Logger appending to path. An empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// SetMirror sets a writer that receives a copy of every line. nil disables mirroring.
func (l *Logger) SetMirror(w io.Writer) {
	l.mu.Lock()
	l.mirror = w
	l.mu.Unlock()
}

// Log appends a line to the logger and to the log file. Each entry is prefixed with [timestamp].
func (l *Logger) Log(line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	mirror := l.mirror
	l.mu.Unlock()

	if mirror != nil {
		_, _ = io.WriteString(mirror, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
