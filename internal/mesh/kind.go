package mesh

import "fmt"

// Kind selects which primitive a render item draws and which of its caps are shown.
// The set is closed; every Kind has exactly one entry in the primitive table (see Lookup).
type Kind int

const (
	Box Kind = iota
	Cone
	ConeNoBottom
	Cylinder
	CylinderNoTop
	CylinderNoBottom
	CylinderOpen
	Plane
	Prism
	Pyramid3
	Pyramid4
	Sphere
	HalfSphere
	TaperedCylinder
	TaperedCylinderNoTop
	TaperedCylinderNoBottom
	TaperedCylinderOpen
	Torus
	HalfTorus

	numKinds
)

var kindNames = [numKinds]string{
	Box:                     "box",
	Cone:                    "cone",
	ConeNoBottom:            "cone-no-bottom",
	Cylinder:                "cylinder",
	CylinderNoTop:           "cylinder-no-top",
	CylinderNoBottom:        "cylinder-no-bottom",
	CylinderOpen:            "cylinder-open",
	Plane:                   "plane",
	Prism:                   "prism",
	Pyramid3:                "pyramid-3",
	Pyramid4:                "pyramid-4",
	Sphere:                  "sphere",
	HalfSphere:              "half-sphere",
	TaperedCylinder:         "tapered-cylinder",
	TaperedCylinderNoTop:    "tapered-cylinder-no-top",
	TaperedCylinderNoBottom: "tapered-cylinder-no-bottom",
	TaperedCylinderOpen:     "tapered-cylinder-open",
	Torus:                   "torus",
	HalfTorus:               "half-torus",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind whose String form is name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("mesh: unknown kind %q", name)
}
