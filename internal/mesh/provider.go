package mesh

// Provider owns primitive geometry on the GPU. Load is called once per primitive while the
// scene is prepared, after the rendering context exists. Draw issues one draw call for the
// parts of p enabled by caps, using whatever shader state has already been uploaded.
type Provider interface {
	Load(p Primitive) error
	Draw(p Primitive, caps Caps)
}
