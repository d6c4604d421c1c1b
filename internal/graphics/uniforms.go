package graphics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms uploads shader.Uniforms values to one raylib shader program. Locations are looked
// up once per name; names the driver optimised out (location -1) are ignored.
type Uniforms struct {
	shader rl.Shader
	locs   map[string]int32
}

// NewUniforms returns a sink for shader.
func NewUniforms(shader rl.Shader) *Uniforms {
	return &Uniforms{shader: shader, locs: make(map[string]int32)}
}

func (u *Uniforms) loc(name string) int32 {
	if l, ok := u.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(u.shader, name)
	u.locs[name] = l
	return l
}

// ToMatrix converts a column-major mgl32 matrix to raylib's layout.
func ToMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func (u *Uniforms) set(name string, v []float32, t rl.ShaderUniformDataType) {
	if l := u.loc(name); l >= 0 {
		rl.SetShaderValue(u.shader, l, v, t)
	}
}

// intBits carries an int through raylib's []float32 uniform API; GL reads the raw bits.
func intBits(i int32) []float32 {
	return []float32{math.Float32frombits(uint32(i))}
}

func (u *Uniforms) SetMat4(name string, m mgl32.Mat4) {
	if l := u.loc(name); l >= 0 {
		rl.SetShaderValueMatrix(u.shader, l, ToMatrix(m))
	}
}

func (u *Uniforms) SetVec2(name string, v mgl32.Vec2) {
	u.set(name, v[:], rl.ShaderUniformVec2)
}

func (u *Uniforms) SetVec3(name string, v mgl32.Vec3) {
	u.set(name, v[:], rl.ShaderUniformVec3)
}

func (u *Uniforms) SetVec4(name string, v mgl32.Vec4) {
	u.set(name, v[:], rl.ShaderUniformVec4)
}

func (u *Uniforms) SetFloat(name string, f float32) {
	u.set(name, []float32{f}, rl.ShaderUniformFloat)
}

func (u *Uniforms) SetInt(name string, i int32) {
	u.set(name, intBits(i), rl.ShaderUniformInt)
}

func (u *Uniforms) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	u.SetInt(name, i)
}

// SetSampler2D points a sampler at a texture unit; GL sets samplers like ints.
func (u *Uniforms) SetSampler2D(name string, slot int) {
	u.SetInt(name, int32(slot))
}
