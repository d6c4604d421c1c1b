package texture

// Handle is the GPU-side name of an uploaded texture.
type Handle uint32

// Params controls how an image is uploaded. Wrapping is always repeat on both axes and
// filtering is always linear for minification and magnification.
type Params struct {
	Mipmaps bool
}

// DefaultParams is what the registry uploads with.
var DefaultParams = Params{Mipmaps: true}

// GPU creates, binds and frees 2-D textures. It must be used from the goroutine that owns
// the rendering context.
type GPU interface {
	Create(img Image, p Params) (Handle, error)
	// Bind makes h the texture sampled from texture unit slot.
	Bind(slot int, h Handle)
	Delete(h Handle)
}
