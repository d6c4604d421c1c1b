package scene_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"still-life/internal/logger"
	"still-life/internal/mesh"
	"still-life/internal/mesh/meshtest"
	"still-life/internal/objects"
	"still-life/internal/render"
	"still-life/internal/scene"
	"still-life/internal/shader"
	"still-life/internal/shader/shadertest"
	"still-life/internal/texture"
	"still-life/internal/texture/texturetest"
)

type harness struct {
	uniforms *shadertest.Recorder
	meshes   *meshtest.Recorder
	gpu      *texturetest.GPU
	dec      *texturetest.Decoder
	log      *logger.Logger
}

func newHarness() *harness {
	dec := &texturetest.Decoder{Images: map[string]texture.Image{}}
	for _, t := range scene.DefaultTextures("tex") {
		dec.Images[t.Path] = texturetest.Solid(4, 4, 3, 200)
	}
	return &harness{
		uniforms: shadertest.NewRecorder(),
		meshes:   meshtest.NewRecorder(),
		gpu:      &texturetest.GPU{},
		dec:      dec,
		log:      logger.NewAt(""),
	}
}

func (h *harness) options() scene.Options {
	return scene.Options{
		Uniforms:   h.uniforms,
		Meshes:     h.meshes,
		Decoder:    h.dec,
		GPU:        h.gpu,
		Log:        h.log,
		TextureDir: "tex",
	}
}

func prepared(t *testing.T, opts scene.Options) *scene.Scene {
	t.Helper()
	s := scene.New(opts)
	require.NoError(t, s.Prepare())
	return s
}

func TestPrepareLoadsEverything(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())

	entries := s.Textures()
	require.Len(t, entries, 3)
	for i, tag := range []string{objects.TexDecorativeBase, objects.TexLightTile, objects.TexDarkTile} {
		assert.Equal(t, tag, entries[i].Tag)
		assert.Equal(t, i, entries[i].Slot)
	}
	assert.Len(t, h.gpu.Binds, 3)

	v, ok := h.uniforms.Value(shader.UseLighting)
	require.True(t, ok)
	assert.Equal(t, true, v)
	v, _ = h.uniforms.Value(shader.LightSource(2, shader.LightFocalStrength))
	assert.Equal(t, float32(16), v)

	assert.ElementsMatch(t,
		[]mesh.Primitive{mesh.PrimPlane, mesh.PrimCylinder, mesh.PrimTaperedCylinder, mesh.PrimHalfTorus,
			mesh.PrimHalfSphere, mesh.PrimSphere, mesh.PrimPyramid3, mesh.PrimTorus, mesh.PrimBox},
		h.meshes.Loads)
	assert.True(t, s.Prepared())
}

func TestPrepareTwiceFails(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())
	assert.ErrorIs(t, s.Prepare(), scene.ErrPrepared)
}

func TestMissingTextureIsLoggedAndSkipped(t *testing.T) {
	h := newHarness()
	delete(h.dec.Images, "tex/lighttile.jpg")
	s := prepared(t, h.options())

	entries := s.Textures()
	require.Len(t, entries, 2)
	assert.Equal(t, objects.TexDarkTile, entries[1].Tag)
	assert.Equal(t, 1, entries[1].Slot)

	assert.Contains(t, strings.Join(h.log.Lines(), "\n"), `texture "lighttile" skipped`)

	// items referring to the missing texture keep drawing
	st := s.Render()
	assert.Equal(t, st.Items, st.Draws)
}

func TestCapacityAbortsPrepare(t *testing.T) {
	h := newHarness()
	opts := h.options()
	opts.Textures = nil
	for i := 0; i < texture.MaxSlots+1; i++ {
		path := fmt.Sprintf("tex/%d.png", i)
		h.dec.Images[path] = texturetest.Solid(1, 1, 4, 0)
		opts.Textures = append(opts.Textures, scene.TextureSource{Tag: fmt.Sprint(i), Path: path})
	}

	s := scene.New(opts)
	err := s.Prepare()
	require.Error(t, err)
	assert.True(t, errors.Is(err, texture.ErrCapacity))
	assert.False(t, s.Prepared())
	assert.Empty(t, s.Textures())
	assert.Len(t, h.gpu.Deleted, texture.MaxSlots)
	assert.Empty(t, h.meshes.Loads)
}

// failingMeshes fails the first n loads.
type failingMeshes struct {
	*meshtest.Recorder
	n      int
	failed []mesh.Primitive
}

func (f *failingMeshes) Load(p mesh.Primitive) error {
	if f.n > 0 {
		f.n--
		f.failed = append(f.failed, p)
		return errors.New("boom")
	}
	return f.Recorder.Load(p)
}

func TestFailedPrepareCanBeRetried(t *testing.T) {
	h := newHarness()
	opts := h.options()
	meshes := &failingMeshes{Recorder: h.meshes, n: 1}
	opts.Meshes = meshes
	s := scene.New(opts)

	err := s.Prepare()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, s.Prepared())
	assert.Empty(t, s.Textures())
	assert.Len(t, h.gpu.Deleted, 3)

	require.NoError(t, s.Prepare())
	entries := s.Textures()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i, e.Slot)
	}
	assert.Contains(t, strings.Join(h.log.Lines(), "\n"), "scene prepared: 3 textures, 4 materials")
	require.Len(t, meshes.failed, 1)
	assert.True(t, h.meshes.Loaded(meshes.failed[0]))
	assert.Zero(t, s.Render().Skipped)
	assert.Empty(t, h.meshes.Unloaded)
}

func TestRenderBeforePreparePanics(t *testing.T) {
	h := newHarness()
	s := scene.New(h.options())
	assert.Panics(t, func() { s.Render() })
}

func TestRenderDrawsEveryItemWithLoadedMeshes(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())
	h.uniforms.Reset()

	st := s.Render()

	assert.Equal(t, render.Stats{Items: 29, Draws: 29}, st)
	assert.Len(t, h.meshes.Draws, 29)
	assert.Empty(t, h.meshes.Unloaded)
	assert.Equal(t, 29, h.uniforms.Count(shader.Model))
}

func TestRenderWithAxis(t *testing.T) {
	h := newHarness()
	opts := h.options()
	opts.ShowAxis = true
	s := prepared(t, opts)

	assert.Equal(t, 32, s.Render().Draws)
	assert.Equal(t, "axis", s.Assemblers()[len(s.Assemblers())-1].Name)
}

func TestKettleSilverUploads(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())
	var kettle objects.Assembler
	for _, a := range s.Assemblers() {
		if a.Name == "kettle" {
			kettle = a
		}
	}
	require.NotNil(t, kettle.Build)

	var silver []render.Item
	for _, it := range kettle.Build() {
		if *it.Color == objects.Silver {
			silver = append(silver, it)
		}
	}
	require.GreaterOrEqual(t, len(silver), 5)

	h.uniforms.Reset()
	d := render.NewDispatcher(h.uniforms, nil, nil, h.meshes)
	d.DrawAll(silver[:5])

	colors := h.uniforms.Named(shader.ObjectColor)
	require.Len(t, colors, 5)
	for _, c := range colors {
		assert.Equal(t, objects.Silver, c.Value)
	}
	assert.Zero(t, h.uniforms.Count(shader.MaterialShininess))
	assert.Zero(t, h.uniforms.Count(shader.ObjectTexture))
}

func TestCupPlateUploads(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())
	h.uniforms.Reset()
	h.meshes.Draws = nil

	st := s.Render()
	require.Equal(t, 29, st.Draws)

	// plane (1 item) and wood base (1 item) come first; the cup plate is the third model upload
	models := h.uniforms.Named(shader.Model)
	want := mgl32.Translate3D(-1, 1.1, 12).Mul4(mgl32.Scale3D(4, 0.24, 4))
	got := models[2].Value.(mgl32.Mat4)
	assert.InDeltaSlice(t, want[:], got[:], 1e-5)

	samplers := h.uniforms.Named(shader.ObjectTexture)
	require.GreaterOrEqual(t, len(samplers), 2)
	assert.Equal(t, 0, samplers[0].Value, "wood base uses DecorativeBase")
	assert.Equal(t, 1, samplers[1].Value, "cup plate uses lighttile")
	assert.Equal(t, mesh.Closed, h.meshes.Draws[2].Caps)
	assert.Equal(t, mesh.PrimCylinder, h.meshes.Draws[2].Primitive)
}

func TestCloseIsIdempotent(t *testing.T) {
	h := newHarness()
	s := prepared(t, h.options())

	s.Close()
	s.Close()

	assert.Len(t, h.gpu.Deleted, 3)
	assert.Empty(t, s.Textures())
	assert.False(t, s.Prepared())
	assert.ErrorIs(t, s.Prepare(), scene.ErrClosed)
	assert.Panics(t, func() { s.Render() })
}

func TestDefaults(t *testing.T) {
	mats := scene.DefaultMaterials()
	require.Len(t, mats, 4)
	assert.Equal(t, objects.MatGlass, mats[3].Tag)
	assert.Equal(t, float32(25), mats[3].Shininess)

	lights := scene.DefaultLights()
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, lights[2].Position)
	for _, l := range lights {
		assert.Equal(t, float32(0.5), l.SpecularIntensity)
	}
}
