// Package shader describes the uniform interface between the scene and the shader program.
// The uniform names below must match the GLSL source verbatim.
package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Model         = "model"
	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
	UVScale       = "UVscale"
	ViewPosition  = "viewPosition"

	MaterialAmbientColor    = "material.ambientColor"
	MaterialAmbientStrength = "material.ambientStrength"
	MaterialDiffuseColor    = "material.diffuseColor"
	MaterialSpecularColor   = "material.specularColor"
	MaterialShininess       = "material.shininess"
)

// Light source fields, combined with an index by LightSource.
const (
	LightPosition          = "position"
	LightAmbientColor      = "ambientColor"
	LightDiffuseColor      = "diffuseColor"
	LightSpecularColor     = "specularColor"
	LightFocalStrength     = "focalStrength"
	LightSpecularIntensity = "specularIntensity"
)

// LightSource returns the uniform name of field for light slot i, e.g. "lightSources[2].position".
func LightSource(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}

// Uniforms uploads named values to the active shader program. Implementations look the
// name up in the program; a name the program does not use is ignored.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
	// SetSampler2D points a sampler uniform at texture unit slot.
	SetSampler2D(name string, slot int)
}
