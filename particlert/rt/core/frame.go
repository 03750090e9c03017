package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraFrame holds the per-frame matrices uploaded to the particle program.
// It is derived from the camera every time and never cached.
type CameraFrame struct {
	// RotationInverse is the inverse of the camera rotation with no
	// translation; it billboards quads towards the camera.
	RotationInverse mgl32.Mat4
	WorldInverse    mgl32.Mat4

	Model          mgl32.Mat4
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	Normal         mgl32.Mat3
	CameraPosition mgl32.Vec3
}

// DeriveCameraFrame refreshes the camera's world inverse and builds the frame.
// View = RotationInverse * WorldInverse. Particles carry no model transform of
// their own, so Model is identity and Normal is derived from it.
func DeriveCameraFrame(cam CameraSource) CameraFrame {
	model := mgl32.Ident4()

	cam.UpdateMatrixWorldInverse()
	worldInverse := cam.MatrixWorldInverse()

	rotInverse := RotationInverse(cam.Quaternion())

	return CameraFrame{
		RotationInverse: rotInverse,
		WorldInverse:    worldInverse,
		Model:           model,
		View:            rotInverse.Mul4(worldInverse),
		Projection:      cam.ProjectionMatrix(),
		Normal:          NormalMatrix(model),
		CameraPosition:  cam.Position(),
	}
}

// RotationInverse returns the translation-free inverse rotation for q.
func RotationInverse(q mgl32.Quat) mgl32.Mat4 {
	return q.Normalize().Mat4().Inv()
}

// NormalMatrix is the inverse-transpose of the upper-left 3x3 of model.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
