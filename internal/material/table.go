// Package material holds the named surface materials render items refer to by tag.
package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/shader"
)

// Definition is a Phong material. Tag names it for lookup.
type Definition struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Table is an append-only, ordered list of materials. It is filled once while the scene is
// prepared and only read afterwards.
type Table struct {
	defs []Definition
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Define appends d. A later definition with an already used tag is never found by Find.
func (t *Table) Define(d Definition) {
	t.defs = append(t.defs, d)
}

// Find returns the first definition tagged tag. On a miss it returns the zero Definition and false.
func (t *Table) Find(tag string) (Definition, bool) {
	for _, d := range t.defs {
		if d.Tag == tag {
			return d, true
		}
	}
	return Definition{}, false
}

// Len returns the number of definitions.
func (t *Table) Len() int {
	return len(t.defs)
}

// Reset empties the table.
func (t *Table) Reset() {
	t.defs = nil
}

// Upload sets the five material uniforms from d.
func Upload(u shader.Uniforms, d Definition) {
	u.SetVec3(shader.MaterialAmbientColor, d.AmbientColor)
	u.SetFloat(shader.MaterialAmbientStrength, d.AmbientStrength)
	u.SetVec3(shader.MaterialDiffuseColor, d.DiffuseColor)
	u.SetVec3(shader.MaterialSpecularColor, d.SpecularColor)
	u.SetFloat(shader.MaterialShininess, d.Shininess)
}
