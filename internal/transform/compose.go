// Package transform builds model matrices for render items.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/shader"
)

// Compose returns the model matrix for an item scaled by scale, rotated by rotationDeg
// (degrees about X, Y and Z) and moved to position:
//
//	M = Translate(position) · RotZ(z) · RotY(y) · RotX(x) · Scale(scale)
//
// so the X rotation applies first. The order decides the orientation of every object in
// the scene and must not change.
func Compose(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// Upload sets the model uniform.
func Upload(u shader.Uniforms, m mgl32.Mat4) {
	u.SetMat4(shader.Model, m)
}
