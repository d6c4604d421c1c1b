// Package scene prepares the still-life scene's GPU resources once and renders its objects
// every frame.
package scene

import (
	"errors"
	"fmt"

	"still-life/internal/light"
	"still-life/internal/logger"
	"still-life/internal/material"
	"still-life/internal/mesh"
	"still-life/internal/objects"
	"still-life/internal/render"
	"still-life/internal/shader"
	"still-life/internal/texture"
)

var (
	ErrPrepared = errors.New("scene: already prepared")
	ErrClosed   = errors.New("scene: closed")
)

// Options wires a Scene to its collaborators. Uniforms, Meshes, Decoder and GPU are required.
// Nil Textures, Materials and Lights fall back to DefaultTextures(TextureDir),
// DefaultMaterials and DefaultLights.
type Options struct {
	Uniforms shader.Uniforms
	Meshes   mesh.Provider
	Decoder  texture.Decoder
	GPU      texture.GPU
	Log      *logger.Logger

	TextureDir string
	Textures   []TextureSource
	Materials  []material.Definition
	Lights     *light.Sources
	ShowAxis   bool
}

// Scene owns the texture registry, material table and light rig of one shader program.
// It is single-threaded: Prepare, Render and Close must run on the rendering thread.
type Scene struct {
	opts       Options
	log        *logger.Logger
	textures   *texture.Registry
	materials  *material.Table
	lights     *light.Rig
	dispatch   *render.Dispatcher
	assemblers []objects.Assembler
	prepared   bool
	closed     bool
}

// New returns an unprepared scene.
func New(opts Options) *Scene {
	if opts.Textures == nil {
		opts.Textures = DefaultTextures(opts.TextureDir)
	}
	if opts.Materials == nil {
		opts.Materials = DefaultMaterials()
	}
	if opts.Lights == nil {
		l := DefaultLights()
		opts.Lights = &l
	}
	log := opts.Log
	if log == nil {
		log = logger.NewAt("")
	}
	s := &Scene{
		opts:       opts,
		log:        log,
		textures:   texture.NewRegistry(opts.Decoder, opts.GPU),
		materials:  material.NewTable(),
		lights:     light.NewRig(opts.Uniforms),
		assemblers: objects.Scene(opts.ShowAxis),
	}
	s.dispatch = render.NewDispatcher(opts.Uniforms, s.textures, s.materials, opts.Meshes)
	return s
}

// Prepare loads and binds the textures, defines the materials, configures the lights and
// loads every primitive the scene draws. A texture that fails to load is logged and skipped;
// running out of texture slots aborts with an error wrapping texture.ErrCapacity. On error
// the loaded textures and materials are released, so Prepare can be called again.
func (s *Scene) Prepare() error {
	if s.closed {
		return ErrClosed
	}
	if s.prepared {
		return ErrPrepared
	}

	meshes, err := s.prepare()
	if err != nil {
		s.textures.Destroy()
		s.materials.Reset()
		return err
	}

	s.prepared = true
	s.log.Logf("scene prepared: %d textures, %d materials, %d meshes, %d objects",
		s.textures.Len(), s.materials.Len(), meshes, len(s.assemblers))
	return nil
}

// prepare does the work of Prepare and returns the number of primitives loaded.
func (s *Scene) prepare() (int, error) {
	for _, t := range s.opts.Textures {
		if err := s.textures.Load(t.Path, t.Tag); err != nil {
			if errors.Is(err, texture.ErrCapacity) {
				return 0, fmt.Errorf("scene: %w", err)
			}
			s.log.Logf("texture %q skipped: %v", t.Tag, err)
			continue
		}
		slot, _ := s.textures.SlotOf(t.Tag)
		s.log.Logf("texture %q loaded from %s into slot %d", t.Tag, t.Path, slot)
	}
	s.textures.BindAll()

	for _, d := range s.opts.Materials {
		s.materials.Define(d)
	}
	s.lights.Configure(*s.opts.Lights)

	prims := mesh.Primitives(s.kinds())
	for _, p := range prims {
		if err := s.opts.Meshes.Load(p); err != nil {
			return 0, fmt.Errorf("scene: load %s mesh: %w", p, err)
		}
	}
	return len(prims), nil
}

func (s *Scene) kinds() []mesh.Kind {
	items := s.Items()
	kinds := make([]mesh.Kind, len(items))
	for i, it := range items {
		kinds[i] = it.Mesh
	}
	return kinds
}

// Render draws every object once, in assembler order. It panics if the scene is not prepared.
func (s *Scene) Render() render.Stats {
	if !s.prepared {
		panic("scene: Render called on an unprepared scene")
	}
	var st render.Stats
	for _, a := range s.assemblers {
		st.Add(s.dispatch.DrawAll(a.Build()))
	}
	return st
}

// Assemblers returns the scene's objects in draw order.
func (s *Scene) Assemblers() []objects.Assembler {
	return s.assemblers
}

// Items returns every render item of a frame in draw order.
func (s *Scene) Items() []render.Item {
	return objects.Items(s.assemblers)
}

// Textures returns the loaded textures in slot order.
func (s *Scene) Textures() []texture.Entry {
	return s.textures.Entries()
}

// Prepared reports whether Prepare has succeeded and Close has not been called.
func (s *Scene) Prepared() bool {
	return s.prepared
}

// Close deletes the scene's textures and forgets its materials. It is safe to call more than once.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.textures.Destroy()
	s.materials.Reset()
	s.prepared = false
	s.closed = true
}
