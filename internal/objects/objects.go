package objects

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/mesh"
	"still-life/internal/render"
)

// Assembler produces the render items of one scene object.
type Assembler struct {
	Name  string
	Build func() []render.Item
}

// Scene returns the assemblers in draw order. The axis reference is appended last when
// withAxis is set.
func Scene(withAxis bool) []Assembler {
	list := []Assembler{
		{"plane", Plane},
		{"wood-base", WoodBase},
		{"coffee-cup", CoffeeCup},
		{"pitcher", Pitcher},
		{"kettle", Kettle},
		{"carafe", Carafe},
	}
	if withAxis {
		list = append(list, Assembler{"axis", AxisReference})
	}
	return list
}

// Items flattens the items of every assembler in order.
func Items(list []Assembler) []render.Item {
	var out []render.Item
	for _, a := range list {
		out = append(out, a.Build()...)
	}
	return out
}

type v3 = mgl32.Vec3

func uv(u, v float32) *mgl32.Vec2 { return render.Opt(mgl32.Vec2{u, v}) }

func color(c mgl32.Vec4) *mgl32.Vec4 { return render.Opt(c) }

// Plane is the ground plane under the whole scene.
func Plane() []render.Item {
	return []render.Item{{
		Name:  "Plane",
		Scale: v3{40, 1, 40},
		Color: color(PlaneWhite),
		Mesh:  mesh.Plane,
	}}
}

// WoodBase is the wooden disk the objects stand on.
func WoodBase() []render.Item {
	return []render.Item{{
		Name:     "WoodBase",
		Scale:    v3{20, 1, 20},
		Texture:  TexDecorativeBase,
		UVScale:  uv(1, 1),
		Material: MatWood,
		Mesh:     mesh.Cylinder,
	}}
}

// CoffeeCup is a tiled ceramic cup on a saucer.
func CoffeeCup() []render.Item {
	center := v3{-1, 0.1, 12}
	return []render.Item{
		{
			Name:     "CupPlate",
			Scale:    v3{4, 0.24, 4},
			Position: center.Add(v3{0, 1, 0}),
			Texture:  TexLightTile,
			UVScale:  uv(1, 1),
			Material: MatCeramic,
			Mesh:     mesh.Cylinder,
		},
		{
			Name:     "CupBase",
			Scale:    v3{3, 2, 3},
			Rotation: v3{180, 0, 0},
			Position: center.Add(v3{0, 3.25, 0}),
			Texture:  TexDarkTile,
			UVScale:  uv(1, 1),
			Material: MatCeramic,
			Mesh:     mesh.TaperedCylinderNoBottom,
		},
		{
			Name:     "CupTop",
			Scale:    v3{3, 2, 3},
			Position: center.Add(v3{0, 3.25, 0}),
			Texture:  TexLightTile,
			UVScale:  uv(0.5, 0.5),
			Material: MatCeramic,
			Mesh:     mesh.CylinderOpen,
		},
		{
			Name:     "CupHandle",
			Scale:    v3{0.75, 1, 0.75},
			Rotation: v3{0, 0, 90},
			Position: center.Add(v3{-3, 4.25, 0}),
			Texture:  TexDarkTile,
			UVScale:  uv(1, 1),
			Material: MatCeramic,
			Mesh:     mesh.HalfTorus,
		},
	}
}

// Pitcher is a bronze pitcher with a lid, spout and handle.
func Pitcher() []render.Item {
	center := v3{10, 1.1, 7}
	item := func(name string, scale, rot, off v3, kind mesh.Kind) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Rotation: rot,
			Position: center.Add(off),
			Color:    color(Bronze),
			Material: MatSteel,
			Mesh:     kind,
		}
	}
	return []render.Item{
		item("PitcherBody", v3{4, 8, 4}, v3{}, v3{}, mesh.TaperedCylinderNoTop),
		item("PitcherLid", v3{2.1, 2, 2.1}, v3{}, v3{0, 7.9, 0}, mesh.HalfSphere),
		item("PitcherTop", v3{0.25, 0.25, 0.25}, v3{}, v3{0, 10.15, 0}, mesh.Sphere),
		item("PitcherPourSpout", v3{1.5, 1, 1.5}, v3{180, 0, 0}, v3{-2, 7.5, -1}, mesh.Pyramid3),
		item("PitcherHandle", v3{1.5, 2, 1.5}, v3{30, 0, 280}, v3{2.3, 5.5, 1}, mesh.HalfTorus),
	}
}

// Carafe is a glass carafe with a wooden grip band.
func Carafe() []render.Item {
	center := v3{0, 1.1, -5}
	glass := func(name string, scale, rot, off v3, kind mesh.Kind) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Rotation: rot,
			Position: center.Add(off),
			Color:    color(Glass),
			Material: MatGlass,
			Mesh:     kind,
		}
	}
	wood := func(name string, scale, rot, off v3) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Rotation: rot,
			Position: center.Add(off),
			Texture:  TexDecorativeBase,
			UVScale:  uv(0.2, 0.2),
			Material: MatWood,
			Mesh:     mesh.TaperedCylinderOpen,
		}
	}
	return []render.Item{
		glass("CarafeBase", v3{4, 2, 4}, v3{180, 0, 0}, v3{0, 2, 0}, mesh.TaperedCylinderNoTop),
		glass("CarafeMiddle", v3{4, 4, 4}, v3{}, v3{0, 2, 0}, mesh.TaperedCylinderOpen),
		glass("CarafeTop", v3{4, 3, 4}, v3{180, 0, 0}, v3{0, 9, 0}, mesh.TaperedCylinderOpen),
		wood("CarafeHandleMiddle", v3{4, 2, 4}, v3{}, v3{0, 4, 0}),
		wood("CarafeHandleTop", v3{4, 1.5, 4}, v3{180, 0, 0}, v3{0, 7.5, 0}),
	}
}

// Kettle is a stacked-torus silver kettle with a goose-neck spout. Only the black lid knob
// and handle grip carry a material.
func Kettle() []render.Item {
	center := v3{-11, 1.5, -5}
	silver := func(name string, scale, rot, off v3, kind mesh.Kind) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Rotation: rot,
			Position: center.Add(off),
			Color:    color(Silver),
			Mesh:     kind,
		}
	}
	black := func(name string, scale, rot, off v3, kind mesh.Kind) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Rotation: rot,
			Position: center.Add(off),
			Color:    color(Black),
			Material: MatWood,
			Mesh:     kind,
		}
	}
	rotX90 := v3{90, 0, 0}
	return []render.Item{
		silver("KettleBase", v3{4, 0.25, 4}, v3{}, v3{0, -0.5, 0}, mesh.Cylinder),
		silver("KettleLayerOne", v3{3.5, 3.5, 4}, rotX90, v3{0, 0.25, 0}, mesh.Torus),
		silver("KettleLayerTwo", v3{3.25, 3.25, 4}, rotX90, v3{0, 1.75, 0}, mesh.Torus),
		silver("KettleLayerThree", v3{3, 3, 4}, rotX90, v3{0, 3.25, 0}, mesh.Torus),
		silver("KettleLayerFour", v3{2.75, 2.75, 4}, rotX90, v3{0, 4.75, 0}, mesh.Torus),
		silver("KettleLid", v3{2.75, 0.5, 2.75}, v3{}, v3{0, 5.5, 0}, mesh.Cylinder),
		silver("KettleLidHandleTube", v3{0.5, 0.75, 0.5}, v3{}, v3{0, 6, 0}, mesh.Cylinder),
		black("KettleLidHandleTop", v3{1, 1, 1}, v3{180, 0, 0}, v3{0, 7.75, 0}, mesh.TaperedCylinder),
		silver("KettleHandleTop", v3{3, 0.25, 1}, v3{}, v3{-4.5, 4.5, 0}, mesh.Box),
		black("KettleHandleBottom", v3{0.25, 4, 1}, v3{}, v3{-6.125, 2.625, 0}, mesh.Box),
		silver("KettleGooseNeckBottom", v3{0.25, 1.25, 0.25}, v3{0, 0, 90}, v3{5, 0.75, 0}, mesh.Cylinder),
		silver("KettleGooseNeckMiddle", v3{0.25, 4, 0.25}, v3{0, 0, -20}, v3{4.85, 0.65, 0}, mesh.Cylinder),
		silver("KettleGooseNeckTop", v3{0.25, 1.25, 0.25}, v3{0, 0, 90}, v3{7.4, 4.4, 0}, mesh.Cylinder),
	}
}

// AxisReference draws red, green and blue bars along X, Y and Z for orienting the camera.
func AxisReference() []render.Item {
	center := v3{-10, 10, 2}
	bar := func(name string, scale v3, c mgl32.Vec4) render.Item {
		return render.Item{
			Name:     name,
			Scale:    scale,
			Position: center.Add(v3{0, 1, 0}),
			Color:    color(c),
			Mesh:     mesh.Box,
		}
	}
	return []render.Item{
		bar("AxisX", v3{5, 1, 1}, Red),
		bar("AxisY", v3{1, 5, 1}, Green),
		bar("AxisZ", v3{1, 1, 5}, Blue),
	}
}
