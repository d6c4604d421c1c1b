// Package texturetest provides fake texture collaborators for tests and headless tracing.
package texturetest

import (
	"fmt"
	"os"

	"still-life/internal/texture"
)

// Bind is one recorded GPU.Bind call.
type Bind struct {
	Slot   int
	Handle texture.Handle
}

// GPU hands out sequential handles starting at 1 and records what happened to them.
type GPU struct {
	Created []texture.Image
	Params  []texture.Params
	Binds   []Bind
	Deleted []texture.Handle
	// Err, when set, is returned by Create.
	Err  error
	next texture.Handle
}

func (g *GPU) Create(img texture.Image, p texture.Params) (texture.Handle, error) {
	if g.Err != nil {
		return 0, g.Err
	}
	g.next++
	g.Created = append(g.Created, img)
	g.Params = append(g.Params, p)
	return g.next, nil
}

func (g *GPU) Bind(slot int, h texture.Handle) {
	g.Binds = append(g.Binds, Bind{Slot: slot, Handle: h})
}

func (g *GPU) Delete(h texture.Handle) {
	g.Deleted = append(g.Deleted, h)
}

// Decoder serves images from memory by path. Paths not in Images fail with os.ErrNotExist.
type Decoder struct {
	Images map[string]texture.Image
	Calls  []string
}

func (d *Decoder) Decode(path string) (texture.Image, error) {
	d.Calls = append(d.Calls, path)
	img, ok := d.Images[path]
	if !ok {
		return texture.Image{}, fmt.Errorf("decode %s: %w", path, os.ErrNotExist)
	}
	return img, nil
}

// Solid returns a width×height image with the given channel count, every byte set to v.
func Solid(width, height, channels int, v byte) texture.Image {
	pix := make([]byte, width*height*channels)
	for i := range pix {
		pix[i] = v
	}
	return texture.Image{Pix: pix, Width: width, Height: height, Channels: channels}
}
