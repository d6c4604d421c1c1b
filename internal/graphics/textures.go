package graphics

import (
	"errors"
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"still-life/internal/texture"
)

// textureFilter is linear for both minification and magnification; mipmaps are not sampled.
var textureFilter = rl.FilterBilinear

// Textures is the raylib texture.GPU. It remembers slot bindings so they can be restored
// after raylib's own 2D drawing has rebound unit 0.
type Textures struct {
	byID  map[uint32]rl.Texture2D
	slots map[int]uint32
}

// NewTextures returns an empty texture store. Create must run after the window exists.
func NewTextures() *Textures {
	return &Textures{byID: make(map[uint32]rl.Texture2D), slots: make(map[int]uint32)}
}

func (t *Textures) Create(img texture.Image, p texture.Params) (texture.Handle, error) {
	var format rl.PixelFormat
	switch img.Channels {
	case 3:
		format = rl.UncompressedR8g8b8
	case 4:
		format = rl.UncompressedR8g8b8a8
	default:
		return 0, fmt.Errorf("graphics: %d-channel texture", img.Channels)
	}
	if len(img.Pix) == 0 {
		return 0, errors.New("graphics: empty texture")
	}

	var pin runtime.Pinner
	pin.Pin(&img.Pix[0])
	im := rl.NewImage(img.Pix, int32(img.Width), int32(img.Height), 1, format)
	tex := rl.LoadTextureFromImage(im)
	pin.Unpin()
	if !rl.IsTextureValid(tex) {
		return 0, errors.New("graphics: texture upload failed")
	}

	if p.Mipmaps {
		rl.GenTextureMipmaps(&tex)
	}
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	rl.SetTextureFilter(tex, textureFilter)

	t.byID[tex.ID] = tex
	return texture.Handle(tex.ID), nil
}

func (t *Textures) Bind(slot int, h texture.Handle) {
	t.slots[slot] = uint32(h)
	bind(slot, uint32(h))
}

func bind(slot int, id uint32) {
	rl.ActiveTextureSlot(int32(slot))
	rl.EnableTexture(id)
}

// Restore rebinds every slot to the texture last bound there, then selects unit 0.
func (t *Textures) Restore() {
	for slot, id := range t.slots {
		bind(slot, id)
	}
	rl.ActiveTextureSlot(0)
}

func (t *Textures) Delete(h texture.Handle) {
	id := uint32(h)
	tex, ok := t.byID[id]
	if !ok {
		return
	}
	rl.UnloadTexture(tex)
	delete(t.byID, id)
	for slot, bound := range t.slots {
		if bound == id {
			delete(t.slots, slot)
		}
	}
}
