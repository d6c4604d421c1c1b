package graphics

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"still-life/internal/geometry"
	"still-life/internal/mesh"
)

type loaded struct {
	geom  geometry.Mesh
	parts map[*geometry.Buffer]rl.Mesh
}

// Meshes is the raylib mesh.Provider. Each primitive is generated once and its parts are
// uploaded as separate GPU meshes, so a draw can leave caps out. Drawing goes through one
// shared material carrying the scene shader with no texture maps, so raylib never rebinds
// the texture units the scene assigned.
type Meshes struct {
	mtl    rl.Material
	byPrim map[mesh.Primitive]*loaded
}

// NewMeshes returns a provider drawing with shader. Load must run after the window exists.
func NewMeshes(shader rl.Shader) *Meshes {
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Texture = rl.Texture2D{}
	}
	return &Meshes{mtl: mtl, byPrim: make(map[mesh.Primitive]*loaded)}
}

// Load generates p and uploads its parts. Loading an already loaded primitive does nothing.
func (m *Meshes) Load(p mesh.Primitive) error {
	if _, ok := m.byPrim[p]; ok {
		return nil
	}
	g, err := geometry.Generate(p)
	if err != nil {
		return err
	}
	l := &loaded{geom: g, parts: make(map[*geometry.Buffer]rl.Mesh)}
	for _, b := range g.All() {
		gm, err := upload(b)
		if err != nil {
			return fmt.Errorf("graphics: %s: %w", p, err)
		}
		l.parts[b] = gm
	}
	m.byPrim[p] = l
	return nil
}

// upload copies b to the GPU. The CPU-side pointers are cleared afterwards so raylib never
// frees Go memory when the mesh is unloaded.
func upload(b *geometry.Buffer) (rl.Mesh, error) {
	if b.VertexCount() == 0 || b.TriangleCount() == 0 {
		return rl.Mesh{}, fmt.Errorf("empty buffer")
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	pin.Pin(&b.Positions[0])
	pin.Pin(&b.Normals[0])
	pin.Pin(&b.UVs[0])
	pin.Pin(&b.Indices[0])

	gm := rl.Mesh{
		VertexCount:   int32(b.VertexCount()),
		TriangleCount: int32(b.TriangleCount()),
		Vertices:      &b.Positions[0],
		Normals:       &b.Normals[0],
		Texcoords:     &b.UVs[0],
		Indices:       &b.Indices[0],
	}
	rl.UploadMesh(&gm, false)
	gm.Vertices, gm.Normals, gm.Texcoords, gm.Indices = nil, nil, nil, nil
	return gm, nil
}

// Draw draws the parts of p enabled by caps with the identity transform; the scene uploads
// the model matrix itself. Unloaded primitives are skipped.
func (m *Meshes) Draw(p mesh.Primitive, caps mesh.Caps) {
	l, ok := m.byPrim[p]
	if !ok {
		return
	}
	for _, b := range l.geom.Parts(caps) {
		rl.DrawMesh(l.parts[b], m.mtl, rl.MatrixIdentity())
	}
}

// Unload frees every uploaded mesh.
func (m *Meshes) Unload() {
	for p, l := range m.byPrim {
		for _, gm := range l.parts {
			rl.UnloadMesh(&gm)
		}
		delete(m.byPrim, p)
	}
}
