package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Backend bundles the scene shader with the raylib implementations of the uniform, mesh and
// texture interfaces. Create it after the window is open.
type Backend struct {
	Shader   rl.Shader
	Uniforms *Uniforms
	Meshes   *Meshes
	Textures *Textures
}

// NewBackend compiles the scene shader and wraps it.
func NewBackend() (*Backend, error) {
	sh, err := LoadProgram()
	if err != nil {
		return nil, err
	}
	return &Backend{
		Shader:   sh,
		Uniforms: NewUniforms(sh),
		Meshes:   NewMeshes(sh),
		Textures: NewTextures(),
	}, nil
}

// Close unloads the meshes and the shader. Textures belong to the scene and are deleted by it.
func (b *Backend) Close() {
	b.Meshes.Unload()
	rl.UnloadShader(b.Shader)
}
