package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"still-life/internal/config"
	"still-life/internal/logger"
	"still-life/internal/texture"
	"still-life/internal/texture/texturetest"
)

func testDecoder(cfg config.Config) *texturetest.Decoder {
	dec := &texturetest.Decoder{Images: map[string]texture.Image{}}
	for _, t := range cfg.Textures {
		dec.Images[cfg.TexturePath(t)] = texturetest.Solid(2, 2, 3, 128)
	}
	return dec
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, list(&buf, false))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "plane (1 items)\n"))
	assert.True(t, strings.HasSuffix(out, "29 items\n"))
	assert.NotContains(t, out, "axis")

	buf.Reset()
	require.NoError(t, list(&buf, true))
	assert.True(t, strings.HasSuffix(buf.String(), "32 items\n"))
}

func TestTrace(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	require.NoError(t, traceWith(&buf, cfg, logger.NewAt(""), testDecoder(cfg), false))
	out := buf.String()

	assert.Contains(t, out, "slot 0: DecorativeBase\n")
	assert.Contains(t, out, "slot 2: darktile\n")
	assert.NotContains(t, out, "prepare ")
	assert.Equal(t, 29, strings.Count(out, "\ndraw "))
	assert.True(t, strings.HasSuffix(out, "29 items, 29 draws, 0 skipped\n"))
}

func TestTraceWithPrepare(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	require.NoError(t, traceWith(&buf, cfg, logger.NewAt(""), testDecoder(cfg), true))
	assert.Contains(t, buf.String(), "prepare bool bUseLighting = true\n")
}

func TestTraceMissingTextures(t *testing.T) {
	cfg := config.Default()
	log := logger.NewAt("")
	var buf bytes.Buffer
	require.NoError(t, traceWith(&buf, cfg, log, &texturetest.Decoder{}, false))
	assert.NotContains(t, buf.String(), "slot ")
	assert.Contains(t, strings.Join(log.Lines(), "\n"), "skipped")
}

func TestRegistryDefaultsToRun(t *testing.T) {
	reg := newRegistry(config.Default(), logger.NewAt(""), new(bytes.Buffer))
	assert.Equal(t, []string{"list", "run", "trace"}, reg.Names())

	var buf bytes.Buffer
	reg = newRegistry(config.Default(), logger.NewAt(""), &buf)
	require.NoError(t, reg.Execute([]string{"list", "-axis"}))
	assert.Contains(t, buf.String(), "axis (3 items)\n")
}
