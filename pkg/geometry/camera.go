package geometry

import (
	"github.com/go-playground/validator/v10"

	"github.com/df07/go-scene-generator/pkg/core"
)

// CameraConfig is the camera and render settings handed to the renderer.
// The generator does not interpret these values beyond range checks.
type CameraConfig struct {
	// Samples per pixel
	PixelSamples int `validate:"gte=1"`
	// Vertical field of view in degrees
	VFov float64 `validate:"gt=0,lt=180"`
	// Eye position, target point and camera-relative up direction
	LookFrom core.Vec3
	LookAt   core.Vec3
	VUp      core.Vec3
	// Lens defocus cone angle in degrees, 0 for a pinhole
	DefocusAngle float64 `validate:"gte=0,lt=180"`
	FocusDist    float64 `validate:"gt=0"`
	AspectRatio  float64 `validate:"gt=0"`
	ImageWidth   int     `validate:"gte=1"`
	// Maximum ray bounce depth
	MaxDepth   int `validate:"gte=1"`
	Background core.Color
}

func init() {
	core.RegisterStructValidation(validateCameraVectors, CameraConfig{})
}

// DefaultCameraConfig returns the reference camera for random sphere scenes
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		PixelSamples: 10,
		VFov:         22.0,
		LookFrom:     core.NewVec3(0, 5, 40), // Back and slightly above the sphere field
		LookAt:       core.NewVec3(0, 0, 0),
		VUp:          core.NewVec3(0, 1, 0),
		DefocusAngle: 0.4,
		FocusDist:    19.0,
		AspectRatio:  1.3,
		ImageWidth:   50,
		MaxDepth:     10,
		Background:   core.NewColor(100, 100, 100),
	}
}

// Validate checks the camera ranges
func (c CameraConfig) Validate() error {
	return core.Validate(c)
}

// validateCameraVectors rejects a degenerate view: zero up vector or eye on the target
func validateCameraVectors(sl validator.StructLevel) {
	c := sl.Current().Interface().(CameraConfig)
	if c.VUp.IsZero() {
		sl.ReportError(c.VUp, "VUp", "VUp", "nonzerovec", "")
	}
	if c.LookFrom == c.LookAt {
		sl.ReportError(c.LookAt, "LookAt", "LookAt", "nefield", "LookFrom")
	}
}
