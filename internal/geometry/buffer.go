// Package geometry generates vertex data for the scene's primitive shapes. Shapes with caps
// keep their sides and caps in separate buffers so a draw can leave either end open.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/mesh"
)

// Buffer is one indexed triangle list: xyz positions, xyz normals, uv coordinates.
type Buffer struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
}

func (b *Buffer) VertexCount() int   { return len(b.Positions) / 3 }
func (b *Buffer) TriangleCount() int { return len(b.Indices) / 3 }

// Position returns vertex i's position.
func (b *Buffer) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.Positions[i*3], b.Positions[i*3+1], b.Positions[i*3+2]}
}

// Normal returns vertex i's normal.
func (b *Buffer) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{b.Normals[i*3], b.Normals[i*3+1], b.Normals[i*3+2]}
}

func (b *Buffer) vertex(p, n mgl32.Vec3, u, v float32) uint16 {
	i := uint16(b.VertexCount())
	b.Positions = append(b.Positions, p[0], p[1], p[2])
	b.Normals = append(b.Normals, n[0], n[1], n[2])
	b.UVs = append(b.UVs, u, v)
	return i
}

// tri appends a triangle wound counter-clockwise when seen from the side its vertex
// normals point to. Zero-area triangles (at poles and apexes) are dropped.
func (b *Buffer) tri(i0, i1, i2 uint16) {
	p0, p1, p2 := b.Position(int(i0)), b.Position(int(i1)), b.Position(int(i2))
	face := p1.Sub(p0).Cross(p2.Sub(p0))
	if face.Len() < 1e-7 {
		return
	}
	n := b.Normal(int(i0)).Add(b.Normal(int(i1))).Add(b.Normal(int(i2)))
	if face.Dot(n) < 0 {
		i1, i2 = i2, i1
	}
	b.Indices = append(b.Indices, i0, i1, i2)
}

// grid emits a (cols+1) x (rows+1) parametric surface; f maps s, t in [0,1] to a
// position and unit normal.
func (b *Buffer) grid(cols, rows int, f func(s, t float32) (p, n mgl32.Vec3)) {
	base := b.VertexCount()
	for j := 0; j <= rows; j++ {
		t := float32(j) / float32(rows)
		for i := 0; i <= cols; i++ {
			s := float32(i) / float32(cols)
			p, n := f(s, t)
			b.vertex(p, n, s, t)
		}
	}
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a := uint16(base + j*(cols+1) + i)
			c := a + uint16(cols+1)
			b.tri(a, a+1, c+1)
			b.tri(a, c+1, c)
		}
	}
}

// face appends a flat convex polygon whose normal points away from center.
func (b *Buffer) face(center mgl32.Vec3, pts ...mgl32.Vec3) {
	n := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0])).Normalize()
	var centroid mgl32.Vec3
	for _, p := range pts {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float32(len(pts)))
	if n.Dot(centroid.Sub(center)) < 0 {
		n = n.Mul(-1)
	}

	uvs := [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if len(pts) == 3 {
		uvs = [][2]float32{{0, 0}, {1, 0}, {0.5, 1}}
	}
	first := b.vertex(pts[0], n, uvs[0][0], uvs[0][1])
	for i := 1; i < len(pts); i++ {
		b.vertex(pts[i], n, uvs[i%len(uvs)][0], uvs[i%len(uvs)][1])
	}
	for i := 1; i+1 < len(pts); i++ {
		b.tri(first, first+uint16(i), first+uint16(i+1))
	}
}

// Mesh is the generated geometry of one primitive. Top and Bottom are nil when the
// shape has no such cap.
type Mesh struct {
	Primitive mesh.Primitive
	Sides     *Buffer
	Top       *Buffer
	Bottom    *Buffer
}

// Parts returns the non-empty buffers enabled by caps. Primitives without separable caps
// return every part regardless of caps.
func (m Mesh) Parts(caps mesh.Caps) []*Buffer {
	if !m.Primitive.Capped() {
		caps = mesh.Closed
	}
	var out []*Buffer
	for _, p := range []struct {
		on  bool
		buf *Buffer
	}{{caps.Sides, m.Sides}, {caps.Top, m.Top}, {caps.Bottom, m.Bottom}} {
		if p.on && p.buf != nil && p.buf.TriangleCount() > 0 {
			out = append(out, p.buf)
		}
	}
	return out
}

// All returns every non-empty buffer of m.
func (m Mesh) All() []*Buffer {
	return m.Parts(mesh.Closed)
}
