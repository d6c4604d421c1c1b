// Package shadertest provides a recording shader.Uniforms for tests and headless tracing.
package shadertest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Type is the uniform type of a recorded upload.
type Type string

const (
	Mat4    Type = "mat4"
	Vec2    Type = "vec2"
	Vec3    Type = "vec3"
	Vec4    Type = "vec4"
	Float   Type = "float"
	Int     Type = "int"
	Bool    Type = "bool"
	Sampler Type = "sampler2D"
)

// Upload is one recorded uniform upload. Value holds the Go value passed in
// (mgl32.Mat4, mgl32.Vec2/3/4, float32, int32, bool or int for samplers).
type Upload struct {
	Name  string
	Type  Type
	Value any
}

func (u Upload) String() string {
	return fmt.Sprintf("%s %s = %v", u.Type, u.Name, u.Value)
}

// Recorder records every upload in call order and keeps the last value per name,
// the way a real program keeps uniform state between draws.
type Recorder struct {
	Uploads []Upload
	// Hook, when set, sees every upload as it is recorded.
	Hook  func(Upload)
	state map[string]any
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{state: make(map[string]any)}
}

func (r *Recorder) record(name string, t Type, v any) {
	if r.state == nil {
		r.state = make(map[string]any)
	}
	u := Upload{Name: name, Type: t, Value: v}
	r.Uploads = append(r.Uploads, u)
	r.state[name] = v
	if r.Hook != nil {
		r.Hook(u)
	}
}

func (r *Recorder) SetMat4(name string, m mgl32.Mat4) { r.record(name, Mat4, m) }
func (r *Recorder) SetVec2(name string, v mgl32.Vec2) { r.record(name, Vec2, v) }
func (r *Recorder) SetVec3(name string, v mgl32.Vec3) { r.record(name, Vec3, v) }
func (r *Recorder) SetVec4(name string, v mgl32.Vec4) { r.record(name, Vec4, v) }
func (r *Recorder) SetFloat(name string, f float32)   { r.record(name, Float, f) }
func (r *Recorder) SetInt(name string, i int32)       { r.record(name, Int, i) }
func (r *Recorder) SetBool(name string, b bool)       { r.record(name, Bool, b) }
func (r *Recorder) SetSampler2D(name string, slot int) {
	r.record(name, Sampler, slot)
}

// Value returns the last value uploaded under name.
func (r *Recorder) Value(name string) (any, bool) {
	v, ok := r.state[name]
	return v, ok
}

// Named returns the uploads of name in call order.
func (r *Recorder) Named(name string) []Upload {
	var out []Upload
	for _, u := range r.Uploads {
		if u.Name == name {
			out = append(out, u)
		}
	}
	return out
}

// Count returns how many uploads were made under name.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Reset forgets the recorded call sequence. Uniform state is kept.
func (r *Recorder) Reset() {
	r.Uploads = nil
}
