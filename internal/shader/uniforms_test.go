package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightSourceName(t *testing.T) {
	assert.Equal(t, "lightSources[0].position", LightSource(0, LightPosition))
	assert.Equal(t, "lightSources[4].specularIntensity", LightSource(4, LightSpecularIntensity))
}
