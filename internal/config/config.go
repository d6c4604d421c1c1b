package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the scene config file, relative to the process working directory.
const DefaultPath = "config/scene.yaml"

// Environment overrides.
const (
	EnvPath       = "SCENE_CONFIG"
	EnvTextureDir = "SCENE_TEXTURE_DIR"
)

// Config holds viewer preferences and the texture manifest. The scene content itself is fixed.
type Config struct {
	Window     Window    `yaml:"window"`
	Camera     Camera    `yaml:"camera"`
	TextureDir string    `yaml:"texture_dir"`
	Textures   []Texture `yaml:"textures"`
	ShowAxis   bool      `yaml:"show_axis"`
	ShowGrid   bool      `yaml:"show_grid"`
	Debug      Debug     `yaml:"debug"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int    `yaml:"target_fps"`
}

type Camera struct {
	Position [3]float32 `yaml:"position,flow"`
	Target   [3]float32 `yaml:"target,flow"`
	Fovy     float32    `yaml:"fovy"`
}

// Texture maps a tag used by the scene objects to an image file under TextureDir.
type Texture struct {
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

// Debug toggles the on-screen overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowDraws    bool `yaml:"show_draws"`
}

// Default returns the default configuration: a 1000x800 window, the three scene textures
// under assets/textures and every overlay off.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1000,
			Height:    800,
			Title:     "Still Life",
			TargetFPS: 60,
		},
		Camera: Camera{
			Position: [3]float32{0, 12, 30},
			Target:   [3]float32{0, 3, 0},
			Fovy:     45,
		},
		TextureDir: "assets/textures",
		Textures: []Texture{
			{Tag: "DecorativeBase", File: "rusticwood.jpg"},
			{Tag: "lighttile", File: "lighttile.jpg"},
			{Tag: "darktile", File: "darktile.jpg"},
		},
	}
}

// Path returns the config path, honouring SCENE_CONFIG.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the config at path over the defaults, so omitted keys keep their default
// values. A missing file returns Default() and no error; a malformed file returns
// Default() and the parse error.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv applies environment overrides to c.
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(EnvTextureDir); dir != "" {
		c.TextureDir = dir
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fovy <= 0 || c.Camera.Fovy >= 180 {
		return fmt.Errorf("camera fovy %g out of range", c.Camera.Fovy)
	}
	for i, t := range c.Textures {
		if t.Tag == "" || t.File == "" {
			return fmt.Errorf("texture %d needs both tag and file", i)
		}
	}
	return nil
}

// TexturePath returns the file path of t under TextureDir. Absolute files are kept as is.
func (c Config) TexturePath(t Texture) string {
	if filepath.IsAbs(t.File) {
		return t.File
	}
	return filepath.Join(c.TextureDir, t.File)
}

// Clone returns a deep copy of c, so overrides on the copy never reach c's texture manifest.
func (c Config) Clone() Config {
	var out Config
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		out = c
		out.Textures = append([]Texture(nil), c.Textures...)
	}
	return out
}
