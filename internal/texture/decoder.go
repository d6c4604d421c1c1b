package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	// Extra formats for image.Decode beyond what imgio registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded, tightly packed pixel buffer. Row 0 is the bottom row of the source
// image (images are flipped vertically on load to match texture coordinates).
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns an image file into a pixel buffer.
type Decoder interface {
	Decode(path string) (Image, error)
}

// FileDecoder decodes image files from disk. Channel count follows the decoded colour
// model: grayscale images have 1 channel, opaque colour images 3 and images with
// transparency 4.
type FileDecoder struct{}

// Decode reads and decodes path and flips it vertically.
func (FileDecoder) Decode(path string) (Image, error) {
	src, err := imgio.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(src), nil
}

// FromImage packs src into an Image, flipping it vertically.
func FromImage(src image.Image) Image {
	channels := channelsOf(src)
	flipped := transform.FlipV(src)
	b := flipped.Bounds()
	w, h := b.Dx(), b.Dy()
	out := Image{Width: w, Height: h, Channels: channels, Pix: make([]byte, 0, w*h*channels)}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(flipped.At(x, y)).(color.NRGBA)
			switch channels {
			case 1:
				out.Pix = append(out.Pix, c.R)
			case 3:
				out.Pix = append(out.Pix, c.R, c.G, c.B)
			default:
				out.Pix = append(out.Pix, c.R, c.G, c.B, c.A)
			}
		}
	}
	return out
}

func channelsOf(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
