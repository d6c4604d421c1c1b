// Package texture loads image files into GPU textures and assigns each one a texture unit
// slot and a tag for lookup.
package texture

import (
	"errors"
	"fmt"
)

// MaxSlots is the number of texture units available to the scene shader.
const MaxSlots = 16

// ErrCapacity is returned by Load when every slot is already in use.
var ErrCapacity = errors.New("texture: all 16 slots in use")

// ErrEmptyTag is returned by Load for an empty tag, which could never be looked up.
var ErrEmptyTag = errors.New("texture: empty tag")

// ChannelError reports a decoded image whose channel count cannot be uploaded.
type ChannelError struct {
	Path     string
	Channels int
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("texture: %s: %d-channel images are not supported (want 3 or 4)", e.Path, e.Channels)
}

// Entry is one loaded texture. Slot is its texture unit, assigned in load order.
type Entry struct {
	Tag    string
	Slot   int
	Handle Handle
}

// Registry owns up to MaxSlots textures. It is filled once while the scene is prepared and
// only read afterwards, so it does no locking.
type Registry struct {
	dec     Decoder
	gpu     GPU
	entries []Entry
}

// NewRegistry returns an empty registry that decodes with dec and uploads through gpu.
func NewRegistry(dec Decoder, gpu GPU) *Registry {
	return &Registry{dec: dec, gpu: gpu, entries: make([]Entry, 0, MaxSlots)}
}

// Load decodes the image at path, uploads it with DefaultParams and registers it under tag
// at the next free slot. A decode failure or unsupported channel count returns an error and
// leaves the registry and GPU untouched, so the caller can log it and carry on. Loading past
// MaxSlots returns ErrCapacity without touching the file.
func (r *Registry) Load(path, tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("load %s as %q: %w", path, tag, ErrCapacity)
	}
	img, err := r.dec.Decode(path)
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	if img.Channels != 3 && img.Channels != 4 {
		return &ChannelError{Path: path, Channels: img.Channels}
	}
	h, err := r.gpu.Create(img, DefaultParams)
	if err != nil {
		return fmt.Errorf("texture: upload %s: %w", path, err)
	}
	r.entries = append(r.entries, Entry{Tag: tag, Slot: len(r.entries), Handle: h})
	return nil
}

// BindAll binds every entry to its slot, in registration order. Call once after the last
// Load and before drawing anything that samples a texture.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.gpu.Bind(e.Slot, e.Handle)
	}
}

func (r *Registry) find(tag string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e, true
		}
	}
	return Entry{}, false
}

// SlotOf returns the texture unit of the first entry tagged tag.
func (r *Registry) SlotOf(tag string) (int, bool) {
	e, ok := r.find(tag)
	return e.Slot, ok
}

// IDOf returns the GPU handle of the first entry tagged tag.
func (r *Registry) IDOf(tag string) (Handle, bool) {
	e, ok := r.find(tag)
	return e.Handle, ok
}

// Entries returns a copy of the loaded entries in slot order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of loaded textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Destroy frees every texture on the GPU and empties the registry.
func (r *Registry) Destroy() {
	for _, e := range r.entries {
		r.gpu.Delete(e.Handle)
	}
	r.entries = r.entries[:0]
}
