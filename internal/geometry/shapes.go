package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/mesh"
)

// Resolution and proportions of the generated shapes.
const (
	Segments     = 36 // around the Y axis, and around a torus ring
	Rings        = 18 // latitude bands of a full sphere
	TubeSegments = 16

	TaperedTopRadius = 0.5
	TorusRadius      = 1.0
	TubeRadius       = 0.2
)

// Generate builds the geometry of p. Conventions (model space):
//
//	box              unit cube centred on the origin
//	plane            2x2 square on XZ at y=0, facing +Y
//	cylinder, cone   radius 1, height 1, base at y=0
//	tapered cylinder bottom radius 1, top radius TaperedTopRadius, height 1
//	sphere           radius 1; the half sphere is the y>=0 dome closed by a disk
//	torus            ring of TorusRadius in the XY plane; the half torus is its y>=0 half
//	prism, pyramids  unit size, centred
func Generate(p mesh.Primitive) (Mesh, error) {
	m := Mesh{Primitive: p, Sides: &Buffer{}}
	switch p {
	case mesh.PrimBox:
		box(m.Sides)
	case mesh.PrimPlane:
		m.Sides.face(mgl32.Vec3{0, -1, 0},
			mgl32.Vec3{-1, 0, -1}, mgl32.Vec3{1, 0, -1}, mgl32.Vec3{1, 0, 1}, mgl32.Vec3{-1, 0, 1})
	case mesh.PrimCylinder:
		frustum(m.Sides, 1, 1)
		m.Top = disk(1, 1, true)
		m.Bottom = disk(0, 1, false)
	case mesh.PrimCone:
		frustum(m.Sides, 1, 0)
		m.Bottom = disk(0, 1, false)
	case mesh.PrimTaperedCylinder:
		frustum(m.Sides, 1, TaperedTopRadius)
		m.Top = disk(1, TaperedTopRadius, true)
		m.Bottom = disk(0, 1, false)
	case mesh.PrimSphere:
		sphere(m.Sides, math32.Pi, Rings)
	case mesh.PrimHalfSphere:
		sphere(m.Sides, math32.Pi/2, Rings/2)
		m.Bottom = disk(0, 1, false)
	case mesh.PrimTorus:
		torus(m.Sides, 2*math32.Pi, Segments)
	case mesh.PrimHalfTorus:
		torus(m.Sides, math32.Pi, Segments/2)
	case mesh.PrimPrism:
		prism(m.Sides)
	case mesh.PrimPyramid3:
		pyramid(m.Sides, []mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0, -0.5, -0.5}})
	case mesh.PrimPyramid4:
		pyramid(m.Sides, []mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}})
	default:
		return Mesh{}, fmt.Errorf("geometry: unknown primitive %d", int(p))
	}
	return m, nil
}

func ring(s float32) (c, sn float32) {
	a := 2 * math32.Pi * s
	return math32.Cos(a), math32.Sin(a)
}

// frustum appends the side wall of a cone section with radius r0 at y=0 and r1 at y=1.
func frustum(b *Buffer, r0, r1 float32) {
	b.grid(Segments, 1, func(s, t float32) (mgl32.Vec3, mgl32.Vec3) {
		c, sn := ring(s)
		r := r0 + (r1-r0)*t
		return mgl32.Vec3{r * c, t, r * sn}, mgl32.Vec3{c, r0 - r1, sn}.Normalize()
	})
}

func disk(y, r float32, up bool) *Buffer {
	b := &Buffer{}
	n := mgl32.Vec3{0, -1, 0}
	if up {
		n = mgl32.Vec3{0, 1, 0}
	}
	center := b.vertex(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
	for i := 0; i <= Segments; i++ {
		c, sn := ring(float32(i) / Segments)
		b.vertex(mgl32.Vec3{r * c, y, r * sn}, n, 0.5+0.5*c, 0.5+0.5*sn)
	}
	for i := 1; i <= Segments; i++ {
		b.tri(center, center+uint16(i), center+uint16(i+1))
	}
	return b
}

// sphere appends a unit sphere from the north pole down to polar angle maxPhi.
func sphere(b *Buffer, maxPhi float32, rows int) {
	b.grid(Segments, rows, func(s, t float32) (mgl32.Vec3, mgl32.Vec3) {
		c, sn := ring(s)
		phi := maxPhi * t
		r := math32.Sin(phi)
		p := mgl32.Vec3{r * c, math32.Cos(phi), r * sn}
		return p, p.Normalize()
	})
}

// torus appends a torus ring in the XY plane swept through angle sweep from +X.
func torus(b *Buffer, sweep float32, rows int) {
	b.grid(TubeSegments, rows, func(s, t float32) (mgl32.Vec3, mgl32.Vec3) {
		u := sweep * t
		v := 2 * math32.Pi * s
		cu, su := math32.Cos(u), math32.Sin(u)
		center := mgl32.Vec3{TorusRadius * cu, TorusRadius * su, 0}
		w := TorusRadius + TubeRadius*math32.Cos(v)
		p := mgl32.Vec3{w * cu, w * su, TubeRadius * math32.Sin(v)}
		return p, p.Sub(center).Normalize()
	})
}

func box(b *Buffer) {
	const h = 0.5
	c := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{3, 7, 6, 2}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	for _, f := range faces {
		b.face(mgl32.Vec3{}, c[f[0]], c[f[1]], c[f[2]], c[f[3]])
	}
}

// prism is a triangular prism: a triangle in XY extruded along Z.
func prism(b *Buffer) {
	const h = 0.5
	front := [3]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {0, h, h}}
	back := [3]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {0, h, -h}}
	b.face(mgl32.Vec3{}, front[0], front[1], front[2])
	b.face(mgl32.Vec3{}, back[0], back[1], back[2])
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		b.face(mgl32.Vec3{}, front[i], front[j], back[j], back[i])
	}
}

// pyramid closes base (at y=-0.5) with triangles meeting at the apex (0, 0.5, 0).
func pyramid(b *Buffer, base []mgl32.Vec3) {
	apex := mgl32.Vec3{0, 0.5, 0}
	center := mgl32.Vec3{0, -0.25, 0}
	b.face(center, base...)
	for i := range base {
		b.face(center, base[i], base[(i+1)%len(base)], apex)
	}
}
