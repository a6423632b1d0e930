package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ErrInvalidMaterial is returned by Validate for out-of-range coefficients
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong surface parameters of a shape
type Material struct {
	Color        core.Color // Used when Pattern is nil
	Pattern      *Pattern   // Optional spatial color, overrides Color
	Ambient      float64
	Diffuse      float64
	Specular     float64
	Shininess    float64
	Reflectivity float64 // Stored for reflective bounces, not traced
}

// DefaultMaterial returns a white material with the conventional Phong weights
func DefaultMaterial() Material {
	return Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// Validate checks that every coefficient is in its allowed range
func (m Material) Validate() error {
	switch {
	case m.Ambient < 0, m.Diffuse < 0, m.Specular < 0:
		return fmt.Errorf("negative phong weight (ambient %g, diffuse %g, specular %g): %w",
			m.Ambient, m.Diffuse, m.Specular, ErrInvalidMaterial)
	case m.Shininess <= 0:
		return fmt.Errorf("shininess %g must be positive: %w", m.Shininess, ErrInvalidMaterial)
	case m.Reflectivity < 0 || m.Reflectivity > 1:
		return fmt.Errorf("reflectivity %g outside [0, 1]: %w", m.Reflectivity, ErrInvalidMaterial)
	}
	return nil
}

// ColorAt returns the surface color at a world-space point on obj
func (m Material) ColorAt(obj Object, worldPoint core.Tuple) core.Color {
	if m.Pattern != nil {
		return m.Pattern.ColorAtObject(obj, worldPoint)
	}
	return m.Color
}

// Lighting shades a single point with the Phong model for one light.
// A shadowed point only receives the ambient term.
func Lighting(m Material, obj Object, light lights.PointLight, point, eye, normal core.Tuple, inShadow bool) (core.Color, error) {
	effective := m.ColorAt(obj, point).MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient, nil
	}

	lightDir, err := light.Position.Subtract(point).Normalize()
	if err != nil {
		return core.Black, fmt.Errorf("light direction: %w", err)
	}

	// Negative cosine means the light is on the other side of the surface
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		return ambient, nil
	}
	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	// Negative cosine means the reflection points away from the eye
	reflectDir := lightDir.Negate().Reflect(normal)
	reflectDotEye := reflectDir.Dot(eye)
	specular := core.Black
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular), nil
}
