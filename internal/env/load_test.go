package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`
# scene overrides
SCENE_TEST_DIR="textures/hi res"
export SCENE_TEST_CONFIG='config/alt.yaml'
SCENE_TEST_KEEP=from-file
=novalue
garbage
`), 0644))
	t.Setenv("SCENE_TEST_KEEP", "from-shell")
	for _, k := range []string{"SCENE_TEST_DIR", "SCENE_TEST_CONFIG"} {
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	set, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"SCENE_TEST_DIR", "SCENE_TEST_CONFIG"}, set)
	assert.Equal(t, "textures/hi res", os.Getenv("SCENE_TEST_DIR"))
	assert.Equal(t, "config/alt.yaml", os.Getenv("SCENE_TEST_CONFIG"))
	assert.Equal(t, "from-shell", os.Getenv("SCENE_TEST_KEEP"))
}

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}
