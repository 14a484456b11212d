package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewTransform is a rigid view-to-world transform: the pose of the observer.
type ViewTransform struct {
	Matrix mgl32.Mat4
}

func NewViewTransform(viewToWorld mgl32.Mat4) ViewTransform {
	return ViewTransform{Matrix: viewToWorld}
}

// ViewTransformFromViewMatrix builds the pose from a world-to-view matrix,
// which is what a viewport stores.
func ViewTransformFromViewMatrix(worldToView mgl32.Mat4) ViewTransform {
	return ViewTransform{Matrix: worldToView.Inv()}
}

func ViewTransformFromPose(position mgl32.Vec3, rotation Euler) ViewTransform {
	translate := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	return ViewTransform{Matrix: translate.Mul4(rotation.Mat3().Mat4())}
}

func IdentityViewTransform() ViewTransform {
	return ViewTransform{Matrix: mgl32.Ident4()}
}

func (v ViewTransform) Translation() mgl32.Vec3 {
	return v.Matrix.Col(3).Vec3()
}

func (v ViewTransform) Rotation() mgl32.Mat3 {
	return v.Matrix.Mat3()
}

// WorldToView returns the inverse pose. The rotation part is transposed rather
// than inverted, so the result is only exact for rigid transforms.
func (v ViewTransform) WorldToView() mgl32.Mat4 {
	rt := v.Rotation().Transpose()
	t := rt.Mul3x1(v.Translation()).Mul(-1)
	m := rt.Mat4()
	m.SetCol(3, mgl32.Vec4{t.X(), t.Y(), t.Z(), 1})
	return m
}

// IsRigid reports whether the rotation part is orthonormal with a positive
// determinant and the bottom row is (0, 0, 0, 1). Entries are compared with an
// absolute tolerance.
func (v ViewTransform) IsRigid(eps float32) bool {
	r := v.Rotation()
	rrt := r.Mul3(r.Transpose())
	ident := mgl32.Ident3()
	if !nearAbs(rrt[:], ident[:], eps) {
		return false
	}
	if mgl32.Abs(r.Det()-1) > eps {
		return false
	}
	bottom := v.Matrix.Row(3)
	return nearAbs(bottom[:], []float32{0, 0, 0, 1}, eps)
}

// nearAbs compares element-wise by absolute difference. mgl32's
// ApproxEqualThreshold falls back to eps*eps when one side is exactly zero,
// which is too strict for float32 rounding noise.
func nearAbs(a, b []float32, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !(mgl32.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

// Euler holds XYZ-order rotation angles in radians: R = Rz * Ry * Rx.
type Euler struct {
	X float32
	Y float32
	Z float32
}

const gimbalEpsilon = 1e-6

// EulerFromMat3 decomposes an orthonormal rotation matrix into XYZ Euler
// angles. At gimbal lock (pitch of +-90 degrees) Z is pinned to zero.
func EulerFromMat3(r mgl32.Mat3) Euler {
	r00, r10, r20 := float64(r.At(0, 0)), float64(r.At(1, 0)), float64(r.At(2, 0))
	r21, r22 := float64(r.At(2, 1)), float64(r.At(2, 2))

	cy := math.Hypot(r00, r10)
	if cy > gimbalEpsilon {
		return Euler{
			X: float32(math.Atan2(r21, r22)),
			Y: float32(math.Atan2(-r20, cy)),
			Z: float32(math.Atan2(r10, r00)),
		}
	}

	r11, r12 := float64(r.At(1, 1)), float64(r.At(1, 2))
	return Euler{
		X: float32(math.Atan2(-r12, r11)),
		Y: float32(math.Atan2(-r20, cy)),
		Z: 0,
	}
}

func (e Euler) Mat3() mgl32.Mat3 {
	return mgl32.Rotate3DZ(e.Z).Mul3(mgl32.Rotate3DY(e.Y)).Mul3(mgl32.Rotate3DX(e.X))
}

func (e Euler) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{e.X, e.Y, e.Z}
}

func EulerFromDegrees(x, y, z float32) Euler {
	return Euler{X: mgl32.DegToRad(x), Y: mgl32.DegToRad(y), Z: mgl32.DegToRad(z)}
}

func (e Euler) Degrees() mgl32.Vec3 {
	return mgl32.Vec3{mgl32.RadToDeg(e.X), mgl32.RadToDeg(e.Y), mgl32.RadToDeg(e.Z)}
}
