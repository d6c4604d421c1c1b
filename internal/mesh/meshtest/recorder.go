// Package meshtest provides an in-memory mesh.Provider for tests and headless tracing.
package meshtest

import (
	"fmt"

	"still-life/internal/mesh"
)

// Draw is one recorded Provider.Draw call.
type Draw struct {
	Primitive mesh.Primitive
	Caps      mesh.Caps
}

func (d Draw) String() string {
	return fmt.Sprintf("draw %s top=%t bottom=%t sides=%t", d.Primitive, d.Caps.Top, d.Caps.Bottom, d.Caps.Sides)
}

// Recorder records loads and draws. Drawing a primitive that was never loaded is recorded
// in Unloaded so tests can assert the preload invariant.
type Recorder struct {
	Loads    []mesh.Primitive
	Draws    []Draw
	Unloaded []mesh.Primitive
	// Hook, when set, sees every draw as it is recorded.
	Hook   func(Draw)
	loaded map[mesh.Primitive]bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{loaded: make(map[mesh.Primitive]bool)}
}

func (r *Recorder) Load(p mesh.Primitive) error {
	if r.loaded == nil {
		r.loaded = make(map[mesh.Primitive]bool)
	}
	r.loaded[p] = true
	r.Loads = append(r.Loads, p)
	return nil
}

func (r *Recorder) Draw(p mesh.Primitive, caps mesh.Caps) {
	if !r.loaded[p] {
		r.Unloaded = append(r.Unloaded, p)
	}
	d := Draw{Primitive: p, Caps: caps}
	r.Draws = append(r.Draws, d)
	if r.Hook != nil {
		r.Hook(d)
	}
}

// Loaded reports whether p has been loaded.
func (r *Recorder) Loaded(p mesh.Primitive) bool {
	return r.loaded[p]
}

// Reset forgets recorded draws but keeps loaded primitives.
func (r *Recorder) Reset() {
	r.Draws = nil
	r.Unloaded = nil
}
