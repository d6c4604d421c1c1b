// Package light configures the fixed set of scene light sources in the shader.
package light

import (
	"github.com/go-gl/mathgl/mgl32"

	"still-life/internal/shader"
)

// NumSources is the number of light slots the shader declares.
const NumSources = 5

// Descriptor is one light source. FocalStrength is the specular exponent and
// SpecularIntensity scales the highlight.
type Descriptor struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// Sources is a full light configuration, one Descriptor per shader slot.
type Sources [NumSources]Descriptor

// Rig pushes light configurations to the shader. There is no per-light update; every
// Configure rewrites all slots.
type Rig struct {
	u       shader.Uniforms
	sources Sources
}

// NewRig returns a rig uploading through u.
func NewRig(u shader.Uniforms) *Rig {
	return &Rig{u: u}
}

// Configure turns lighting on and uploads every field of every slot.
func (r *Rig) Configure(s Sources) {
	r.sources = s
	r.u.SetBool(shader.UseLighting, true)
	for i, d := range s {
		r.u.SetVec3(shader.LightSource(i, shader.LightPosition), d.Position)
		r.u.SetVec3(shader.LightSource(i, shader.LightAmbientColor), d.AmbientColor)
		r.u.SetVec3(shader.LightSource(i, shader.LightDiffuseColor), d.DiffuseColor)
		r.u.SetVec3(shader.LightSource(i, shader.LightSpecularColor), d.SpecularColor)
		r.u.SetFloat(shader.LightSource(i, shader.LightFocalStrength), d.FocalStrength)
		r.u.SetFloat(shader.LightSource(i, shader.LightSpecularIntensity), d.SpecularIntensity)
	}
}

// Sources returns the last configuration passed to Configure.
func (r *Rig) Sources() Sources {
	return r.sources
}
