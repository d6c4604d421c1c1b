package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l *Logger) {
	l.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }
}

func TestLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scene.txt")
	l := NewAt(path)
	fixedClock(l)

	l.Log("texture loaded")
	l.Logf("prepared %d textures", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-03-01 09:30:00] texture loaded\n[2024-03-01 09:30:00] prepared 3 textures\n", string(data))
	assert.Equal(t, []string{"[2024-03-01 09:30:00] texture loaded", "[2024-03-01 09:30:00] prepared 3 textures"}, l.Lines())
}

func TestMirror(t *testing.T) {
	l := NewAt("")
	fixedClock(l)
	var buf bytes.Buffer
	l.SetMirror(&buf)

	l.Log("hello")
	l.SetMirror(nil)
	l.Log("quiet")

	assert.Equal(t, "[2024-03-01 09:30:00] hello\n", buf.String())
	assert.Len(t, l.Lines(), 2)
}

func TestLinesIsACopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] a"))
}
