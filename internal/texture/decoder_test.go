package texture_test

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"still-life/internal/texture"
	"still-life/internal/texture/texturetest"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestFileDecoderOpaquePNGHasThreeChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255}) // top-left red
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255}) // bottom-left blue
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got, err := texture.FileDecoder{}.Decode(writePNG(t, img))
	require.NoError(t, err)

	assert.Equal(t, 2, got.Width)
	assert.Equal(t, 2, got.Height)
	assert.Equal(t, 3, got.Channels)
	require.Len(t, got.Pix, 2*2*3)
	// flipped: first packed row is the bottom of the source image
	assert.Equal(t, []byte{0, 0, 255}, got.Pix[0:3])
	assert.Equal(t, []byte{255, 0, 0}, got.Pix[6:9])
}

func TestFileDecoderTranslucentPNGHasFourChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	got, err := texture.FileDecoder{}.Decode(writePNG(t, img))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Channels)
	assert.Len(t, got.Pix, 4)
	assert.Equal(t, byte(128), got.Pix[3])
}

func TestFileDecoderGrayIsOneChannel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	got, err := texture.FileDecoder{}.Decode(writePNG(t, img))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Channels)
}

func TestFileDecoderJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, img, nil))
	require.NoError(t, f.Close())

	got, err := texture.FileDecoder{}.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Channels)
}

func TestFileDecoderMissingFile(t *testing.T) {
	_, err := texture.FileDecoder{}.Decode(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestRegistryWithFileDecoder(t *testing.T) {
	rgb := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range rgb.Pix {
		rgb.Pix[i] = 255
	}
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gpu := &texturetest.GPU{}
	reg := texture.NewRegistry(texture.FileDecoder{}, gpu)

	require.NoError(t, reg.Load(writePNG(t, rgb), "rgb"))
	require.Error(t, reg.Load(writePNG(t, gray), "gray"))

	assert.Equal(t, 1, reg.Len())
	slot, ok := reg.SlotOf("rgb")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Equal(t, 3, gpu.Created[0].Channels)
}
