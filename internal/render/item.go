// Package render turns lists of render items into uniform uploads and draw calls.
package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/mesh"
)

// Item is one drawable instance: an absolute world transform, optional visual overrides
// and the mesh to draw. A nil Color or UVScale and an empty Texture or Material mean
// "no override"; a non-nil zero colour is a real black override.
type Item struct {
	Name     string
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about X, Y, Z
	Position mgl32.Vec3
	Color    *mgl32.Vec4
	Texture  string
	UVScale  *mgl32.Vec2
	Material string
	Mesh     mesh.Kind
}

// Opt returns a pointer to a copy of v, for filling optional Item fields.
func Opt[T any](v T) *T {
	return &v
}

func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-22s %-26s scale=%v rot=%v pos=%v", it.Name, it.Mesh, fmtVec(it.Scale[:]), fmtVec(it.Rotation[:]), fmtVec(it.Position[:]))
	if it.Color != nil {
		fmt.Fprintf(&b, " color=%v", fmtVec(it.Color[:]))
	}
	if it.Texture != "" {
		fmt.Fprintf(&b, " texture=%s", it.Texture)
	}
	if it.UVScale != nil {
		fmt.Fprintf(&b, " uv=%v", fmtVec(it.UVScale[:]))
	}
	if it.Material != "" {
		fmt.Fprintf(&b, " material=%s", it.Material)
	}
	return b.String()
}

func fmtVec(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
