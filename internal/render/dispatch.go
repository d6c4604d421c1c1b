package render

import (
	"still-life/internal/material"
	"still-life/internal/mesh"
	"still-life/internal/shader"
	"still-life/internal/transform"
)

// SlotFinder resolves a texture tag to its texture unit.
type SlotFinder interface {
	SlotOf(tag string) (int, bool)
}

// MaterialFinder resolves a material tag to its definition.
type MaterialFinder interface {
	Find(tag string) (material.Definition, bool)
}

// Stats counts what a DrawAll call did.
type Stats struct {
	Items   int // items visited
	Draws   int // draw calls issued
	Skipped int // items with an undeclared mesh kind
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Items += o.Items
	s.Draws += o.Draws
	s.Skipped += o.Skipped
}

// Dispatcher uploads per-item shader state and issues draw calls. Shader state is not
// reset between items: whatever an item does not override stays as the previous item left it.
type Dispatcher struct {
	u         shader.Uniforms
	textures  SlotFinder
	materials MaterialFinder
	meshes    mesh.Provider
}

// NewDispatcher returns a dispatcher uploading through u and drawing through meshes.
func NewDispatcher(u shader.Uniforms, textures SlotFinder, materials MaterialFinder, meshes mesh.Provider) *Dispatcher {
	return &Dispatcher{u: u, textures: textures, materials: materials, meshes: meshes}
}

// DrawAll draws items in order. For each item it uploads the model matrix, then the colour
// override (which turns texturing off), then the texture (which turns it back on), the UV
// scale and the material, and finally draws the item's primitive with its cap flags.
// Unresolved texture or material tags are skipped without failing the item.
func (d *Dispatcher) DrawAll(items []Item) Stats {
	var st Stats
	for _, it := range items {
		st.Items++
		transform.Upload(d.u, transform.Compose(it.Scale, it.Rotation, it.Position))

		if it.Color != nil {
			d.u.SetBool(shader.UseTexture, false)
			d.u.SetVec4(shader.ObjectColor, *it.Color)
		}
		if it.Texture != "" {
			if slot, ok := d.textures.SlotOf(it.Texture); ok {
				d.u.SetBool(shader.UseTexture, true)
				d.u.SetSampler2D(shader.ObjectTexture, slot)
			}
		}
		if it.UVScale != nil {
			d.u.SetVec2(shader.UVScale, *it.UVScale)
		}
		if it.Material != "" {
			if def, ok := d.materials.Find(it.Material); ok {
				material.Upload(d.u, def)
			}
		}

		e, ok := mesh.Lookup(it.Mesh)
		if !ok {
			st.Skipped++
			continue
		}
		d.meshes.Draw(e.Primitive, e.Caps)
		st.Draws++
	}
	return st
}
