package mesh

// Primitive is one distinct piece of geometry the provider loads and draws.
// Several Kinds share a Primitive and differ only in their Caps.
type Primitive int

const (
	PrimBox Primitive = iota
	PrimCone
	PrimCylinder
	PrimPlane
	PrimPrism
	PrimPyramid3
	PrimPyramid4
	PrimSphere
	PrimHalfSphere
	PrimTaperedCylinder
	PrimTorus
	PrimHalfTorus

	numPrimitives
)

var primitiveNames = [numPrimitives]string{
	PrimBox:             "box",
	PrimCone:            "cone",
	PrimCylinder:        "cylinder",
	PrimPlane:           "plane",
	PrimPrism:           "prism",
	PrimPyramid3:        "pyramid3",
	PrimPyramid4:        "pyramid4",
	PrimSphere:          "sphere",
	PrimHalfSphere:      "half-sphere",
	PrimTaperedCylinder: "tapered-cylinder",
	PrimTorus:           "torus",
	PrimHalfTorus:       "half-torus",
}

// AllPrimitives returns every Primitive in declaration order.
func AllPrimitives() []Primitive {
	out := make([]Primitive, numPrimitives)
	for i := range out {
		out[i] = Primitive(i)
	}
	return out
}

func (p Primitive) String() string {
	if p < 0 || p >= numPrimitives {
		return "unknown"
	}
	return primitiveNames[p]
}

// Capped reports whether p has separately drawable caps. Draws of other primitives
// ignore their Caps and always draw the whole shape.
func (p Primitive) Capped() bool {
	switch p {
	case PrimCone, PrimCylinder, PrimTaperedCylinder:
		return true
	}
	return false
}

// Caps says which parts of a primitive are drawn. Only cones, cylinders and
// tapered cylinders have separable caps; the other primitives ignore Caps.
// For cones only Bottom and Sides are meaningful.
type Caps struct {
	Top    bool
	Bottom bool
	Sides  bool
}

// Closed draws every part.
var Closed = Caps{Top: true, Bottom: true, Sides: true}

// Entry is the primitive and cap flags a Kind dispatches to.
type Entry struct {
	Primitive Primitive
	Caps      Caps
}

var table = [numKinds]Entry{
	Box:                     {PrimBox, Closed},
	Cone:                    {PrimCone, Caps{Bottom: true, Sides: true}},
	ConeNoBottom:            {PrimCone, Caps{Sides: true}},
	Cylinder:                {PrimCylinder, Closed},
	CylinderNoTop:           {PrimCylinder, Caps{Top: false, Bottom: true, Sides: true}},
	CylinderNoBottom:        {PrimCylinder, Caps{Top: true, Bottom: false, Sides: true}},
	CylinderOpen:            {PrimCylinder, Caps{Sides: true}},
	Plane:                   {PrimPlane, Closed},
	Prism:                   {PrimPrism, Closed},
	Pyramid3:                {PrimPyramid3, Closed},
	Pyramid4:                {PrimPyramid4, Closed},
	Sphere:                  {PrimSphere, Closed},
	HalfSphere:              {PrimHalfSphere, Closed},
	TaperedCylinder:         {PrimTaperedCylinder, Closed},
	TaperedCylinderNoTop:    {PrimTaperedCylinder, Caps{Top: false, Bottom: true, Sides: true}},
	TaperedCylinderNoBottom: {PrimTaperedCylinder, Caps{Top: true, Bottom: false, Sides: true}},
	TaperedCylinderOpen:     {PrimTaperedCylinder, Caps{Sides: true}},
	Torus:                   {PrimTorus, Closed},
	HalfTorus:               {PrimHalfTorus, Closed},
}

// Lookup returns the primitive and cap flags for k. ok is false for an undeclared Kind.
func Lookup(k Kind) (e Entry, ok bool) {
	if !k.Valid() {
		return Entry{}, false
	}
	return table[k], true
}

// Primitives returns the distinct primitives needed to draw kinds, in first-use order.
// Invalid kinds are ignored.
func Primitives(kinds []Kind) []Primitive {
	var seen [numPrimitives]bool
	var out []Primitive
	for _, k := range kinds {
		e, ok := Lookup(k)
		if !ok || seen[e.Primitive] {
			continue
		}
		seen[e.Primitive] = true
		out = append(out, e.Primitive)
	}
	return out
}
