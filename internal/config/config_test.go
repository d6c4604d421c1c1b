package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 1280
show_axis: true
debug:
  show_fps: true
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, 800, c.Window.Height)
	assert.Equal(t, "Still Life", c.Window.Title)
	assert.True(t, c.ShowAxis)
	assert.True(t, c.Debug.ShowFPS)
	assert.Len(t, c.Textures, 3)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))

	c, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("textures:\n  - tag: wood\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "needs both tag and file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scene.yaml")
	c := Default()
	c.ShowGrid = true
	c.Textures = append(c.Textures, Texture{Tag: "marble", File: "marble.png"})

	require.NoError(t, Save(path, c))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/other.yaml")
	t.Setenv(EnvTextureDir, "/srv/textures")

	assert.Equal(t, "/tmp/other.yaml", Path())
	c := Default()
	c.ApplyEnv()
	assert.Equal(t, "/srv/textures", c.TextureDir)
	assert.Equal(t, filepath.Join("/srv/textures", "lighttile.jpg"), c.TexturePath(c.Textures[1]))
	assert.Equal(t, "/abs/x.png", c.TexturePath(Texture{Tag: "x", File: "/abs/x.png"}))
}

func TestPathDefault(t *testing.T) {
	t.Setenv(EnvPath, "")
	assert.Equal(t, DefaultPath, Path())
}

func TestCloneIsDeep(t *testing.T) {
	c := Default()
	d := c.Clone()
	assert.Equal(t, c, d)

	d.Textures[0].File = "other.png"
	d.Camera.Position[0] = 99
	assert.Equal(t, "rusticwood.jpg", c.Textures[0].File)
	assert.Equal(t, float32(0), c.Camera.Position[0])
}
