package scene

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/light"
	"still-life/internal/material"
	"still-life/internal/objects"
)

// TextureSource is an image file to load under a tag.
type TextureSource struct {
	Tag  string
	Path string
}

// DefaultTextures returns the three scene textures under dir.
func DefaultTextures(dir string) []TextureSource {
	return []TextureSource{
		{Tag: objects.TexDecorativeBase, Path: filepath.Join(dir, "rusticwood.jpg")},
		{Tag: objects.TexLightTile, Path: filepath.Join(dir, "lighttile.jpg")},
		{Tag: objects.TexDarkTile, Path: filepath.Join(dir, "darktile.jpg")},
	}
}

func grey(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// DefaultMaterials returns the steel, wood, ceramic and glass materials.
func DefaultMaterials() []material.Definition {
	return []material.Definition{
		{
			Tag:             objects.MatSteel,
			AmbientColor:    grey(0.2),
			AmbientStrength: 0.3,
			DiffuseColor:    grey(0.2),
			SpecularColor:   grey(0.5),
			Shininess:       2,
		},
		{
			Tag:             objects.MatWood,
			AmbientColor:    grey(0.1),
			AmbientStrength: 0.2,
			DiffuseColor:    grey(0.3),
			SpecularColor:   grey(0.1),
			Shininess:       0.3,
		},
		{
			Tag:             objects.MatCeramic,
			AmbientColor:    grey(0.3),
			AmbientStrength: 0.1,
			DiffuseColor:    grey(0.2),
			SpecularColor:   grey(0.2),
			Shininess:       0.5,
		},
		{
			Tag:             objects.MatGlass,
			AmbientColor:    mgl32.Vec3{0.9, 1, 1},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.9, 1, 1},
			SpecularColor:   grey(1),
			Shininess:       25,
		},
	}
}

// DefaultLights returns four lights at the corners of the table and a dim one overhead.
func DefaultLights() light.Sources {
	lamp := func(pos mgl32.Vec3, ambient, diffuse, focal float32) light.Descriptor {
		return light.Descriptor{
			Position:          pos,
			AmbientColor:      grey(ambient),
			DiffuseColor:      grey(diffuse),
			SpecularColor:     grey(0.2),
			FocalStrength:     focal,
			SpecularIntensity: 0.5,
		}
	}
	return light.Sources{
		lamp(mgl32.Vec3{-6, 10, 6}, 0.01, 0.6, 32),
		lamp(mgl32.Vec3{6, 10, -6}, 0.01, 0.6, 32),
		lamp(mgl32.Vec3{0, 10, 0}, 0.2, 0.1, 16),
		lamp(mgl32.Vec3{6, 10, 6}, 0.2, 0.6, 32),
		lamp(mgl32.Vec3{-6, 10, -6}, 0.2, 0.6, 32),
	}
}
