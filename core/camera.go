package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type ProjectionKind int

const (
	Perspective ProjectionKind = iota
	Orthographic
	Panoramic
)

var projectionTokens = map[ProjectionKind]string{
	Perspective:  "PERSP",
	Orthographic: "ORTHO",
	Panoramic:    "PANO",
}

var projectionNames = map[ProjectionKind]string{
	Perspective:  "perspective",
	Orthographic: "orthographic",
	Panoramic:    "panoramic",
}

// String returns the host-native enumeration token.
func (k ProjectionKind) String() string {
	if tok, ok := projectionTokens[k]; ok {
		return tok
	}
	return fmt.Sprintf("ProjectionKind(%d)", int(k))
}

func (k ProjectionKind) Name() string {
	return projectionNames[k]
}

// ParseProjectionKind accepts either the host token ("PERSP") or the long
// name ("perspective"), case-insensitively.
func ParseProjectionKind(s string) (ProjectionKind, error) {
	s = strings.TrimSpace(s)
	for k, tok := range projectionTokens {
		if strings.EqualFold(s, tok) || strings.EqualFold(s, projectionNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown projection kind %q", s)
}

func (k ProjectionKind) MarshalText() ([]byte, error) {
	if _, ok := projectionTokens[k]; !ok {
		return nil, fmt.Errorf("unknown projection kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *ProjectionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseProjectionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// CameraConfig is what the user picks before spawning a camera. FocalLength
// only has meaning for perspective cameras but must be positive regardless.
type CameraConfig struct {
	Projection   ProjectionKind `yaml:"projection"`
	FocalLength  float32        `yaml:"focal_length"`
	SensorWidth  float32        `yaml:"sensor_width"`
	DepthOfField bool           `yaml:"depth_of_field"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Projection:  Perspective,
		FocalLength: 50.0,
		SensorWidth: 36.0,
	}
}

// Validate fails with ErrInvalidConfig on non-positive (or NaN) lens values.
func (c CameraConfig) Validate() error {
	if !(c.FocalLength > 0) {
		return fmt.Errorf("%w: focal length must be positive, got %v", ErrInvalidConfig, c.FocalLength)
	}
	if !(c.SensorWidth > 0) {
		return fmt.Errorf("%w: sensor width must be positive, got %v", ErrInvalidConfig, c.SensorWidth)
	}
	return nil
}

// CameraDescriptor is the placement and configuration for a camera that has
// not been inserted into a scene yet.
type CameraDescriptor struct {
	Position mgl32.Vec3
	Rotation Euler
	Config   CameraConfig
}

// Derive places a camera at the pose described by view. It has no side
// effects; inserting the result is up to the caller.
func Derive(view ViewTransform, config CameraConfig) (CameraDescriptor, error) {
	if err := config.Validate(); err != nil {
		return CameraDescriptor{}, err
	}
	return CameraDescriptor{
		Position: view.Translation(),
		Rotation: EulerFromMat3(view.Rotation()),
		Config:   config,
	}, nil
}

// Transform rebuilds the view-to-world matrix the descriptor was derived from.
func (d CameraDescriptor) Transform() ViewTransform {
	return ViewTransformFromPose(d.Position, d.Rotation)
}
