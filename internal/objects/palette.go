// Package objects assembles the fixed still-life scene: every object is a pure function
// returning its render items with absolute positions (object centre plus local offset).
package objects

import "github.com/go-gl/mathgl/mgl32"

// Scene colours.
var (
	PlaneWhite = mgl32.Vec4{1, 1, 1, 0}
	Bronze     = mgl32.Vec4{0.75, 0.47, 0.14, 1}
	Glass      = mgl32.Vec4{0.937, 1, 1, 0.5}
	Silver     = mgl32.Vec4{0.753, 0.753, 0.753, 1}
	Black      = mgl32.Vec4{0.1, 0.1, 0.1, 1}
	Red        = mgl32.Vec4{1, 0, 0, 1}
	Green      = mgl32.Vec4{0, 1, 0, 1}
	Blue       = mgl32.Vec4{0, 0, 1, 1}
)

// Texture and material tags referenced by the assemblers.
const (
	TexDecorativeBase = "DecorativeBase"
	TexLightTile      = "lighttile"
	TexDarkTile       = "darktile"

	MatSteel   = "steel"
	MatWood    = "wood"
	MatCeramic = "ceramic"
	MatGlass   = "glass"
)
