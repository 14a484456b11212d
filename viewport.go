package viewcam

import (
	"github.com/gekko3d/viewcam/core"
	"github.com/go-gl/mathgl/mgl32"
)

// Viewport is the interactive 3D view. Like the host it stores the
// world-to-view matrix, not the observer pose.
type Viewport struct {
	ViewMatrix mgl32.Mat4
}

// NewViewport starts at the host's default startup view: Z-up, looking at the
// origin from the front-right.
func NewViewport() *Viewport {
	v := &Viewport{}
	v.LookAt(mgl32.Vec3{7.36, -6.93, 4.96}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1})
	return v
}

func (v *Viewport) LookAt(eye, target, up mgl32.Vec3) {
	v.ViewMatrix = mgl32.LookAtV(eye, target, up)
}

func (v *Viewport) SetPose(position mgl32.Vec3, rotation core.Euler) {
	v.ViewMatrix = core.ViewTransformFromPose(position, rotation).WorldToView()
}

// ViewTransform returns the observer pose (the inverted view matrix).
func (v *Viewport) ViewTransform() core.ViewTransform {
	return core.ViewTransformFromViewMatrix(v.ViewMatrix)
}

// CameraSettings holds the user-chosen fields used for new cameras.
type CameraSettings struct {
	Config core.CameraConfig
}
