package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadProgram compiles the scene shader. raylib fills matView and matProjection on every
// draw; everything else comes from the uniform sink. Fragments are written opaque: colour
// alpha is uploaded but never blended, so the alpha-0 ground plane and the glass stay visible.
func LoadProgram() (rl.Shader, error) {
	sh := rl.LoadShaderFromMemory(sceneVS, sceneFS)
	if !rl.IsShaderValid(sh) {
		return sh, errors.New("graphics: scene shader failed to compile")
	}
	return sh, nil
}

const (
	sceneVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 model;
uniform mat4 matView;
uniform mat4 matProjection;
out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;
void main() {
  vec4 world = model * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
  fragTexCoord = vertexTexCoord;
  gl_Position = matProjection * matView * world;
}
`
	sceneFS = `#version 330
#define NUM_LIGHTS 5
struct LightSource {
  vec3 position;
  vec3 ambientColor;
  vec3 diffuseColor;
  vec3 specularColor;
  float focalStrength;
  float specularIntensity;
};
struct Material {
  vec3 ambientColor;
  float ambientStrength;
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform LightSource lightSources[NUM_LIGHTS];
uniform Material material;
out vec4 finalColor;

vec3 shade(LightSource light, vec3 n, vec3 view) {
  vec3 ambient = material.ambientStrength * light.ambientColor * material.ambientColor;
  vec3 toLight = normalize(light.position - fragPosition);
  vec3 diffuse = max(dot(n, toLight), 0.0) * light.diffuseColor * material.diffuseColor;
  vec3 reflected = reflect(-toLight, n);
  float highlight = pow(max(dot(view, reflected), 0.0), light.focalStrength);
  vec3 specular = light.specularIntensity * material.shininess * highlight * light.specularColor * material.specularColor;
  return ambient + diffuse + specular;
}

void main() {
  vec4 base = bUseTexture ? texture(objectTexture, fragTexCoord * UVscale) : objectColor;
  if (!bUseLighting) {
    finalColor = vec4(base.rgb, 1.0);
    return;
  }
  vec3 n = normalize(fragNormal);
  vec3 view = normalize(viewPosition - fragPosition);
  vec3 lit = vec3(0.0);
  for (int i = 0; i < NUM_LIGHTS; i++) {
    lit += shade(lightSources[i], n, view);
  }
  finalColor = vec4(lit * base.rgb, 1.0);
}
`
)
