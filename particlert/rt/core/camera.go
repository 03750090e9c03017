package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraSource is the read-only view of a camera the particle pipeline needs.
// MatrixWorldInverse is only refreshed by UpdateMatrixWorldInverse; callers
// must request the recomputation before reading it.
type CameraSource interface {
	MatrixWorld() mgl32.Mat4
	UpdateMatrixWorldInverse()
	MatrixWorldInverse() mgl32.Mat4
	Quaternion() mgl32.Quat
	ProjectionMatrix() mgl32.Mat4
	Position() mgl32.Vec3
}

// Camera is a perspective camera placed by a Transform.
type Camera struct {
	Transform *Transform

	FovY   float32 // radians
	Aspect float32
	Near   float32
	Far    float32

	projection         mgl32.Mat4
	matrixWorldInverse mgl32.Mat4
}

func NewCamera(fovY, aspect, near, far float32) *Camera {
	c := &Camera{
		Transform:          NewTransform(),
		matrixWorldInverse: mgl32.Ident4(),
	}
	c.Transform.Position = mgl32.Vec3{0, 0, 20}
	c.SetPerspective(fovY, aspect, near, far)
	return c
}

// SetPerspective recomputes the projection matrix and marks the camera dirty.
func (c *Camera) SetPerspective(fovY, aspect, near, far float32) {
	if aspect <= 0 {
		aspect = 1
	}
	c.FovY = fovY
	c.Aspect = aspect
	c.Near = near
	c.Far = far
	c.projection = mgl32.Perspective(fovY, aspect, near, far)
	c.Transform.Dirty = true
}

// SetAspect keeps the current lens and only changes the aspect ratio.
func (c *Camera) SetAspect(aspect float32) {
	c.SetPerspective(c.FovY, aspect, c.Near, c.Far)
}

// LookAt places the camera at eye facing center. When up is parallel to the
// view direction another axis stands in for it. When eye and center coincide
// there is no direction, so only the position changes.
func (c *Camera) LookAt(eye, center, up mgl32.Vec3) {
	c.Transform.SetPosition(eye)
	forward := center.Sub(eye)
	if forward.Len() < lookAtEpsilon {
		return
	}
	up = lookAtUp(forward.Normalize(), up)

	view := mgl32.LookAtV(eye, center, up)
	// The camera's world rotation is the inverse of the view rotation.
	rot := mgl32.Mat4ToQuat(view.Mat3().Transpose().Mat4())
	c.Transform.SetRotation(rot)
}

const lookAtEpsilon = 1e-6

// Fallback up axes, tried in order.
var lookAtUpAxes = [...]mgl32.Vec3{{0, 1, 0}, {0, 0, -1}, {1, 0, 0}}

func lookAtUp(forward, up mgl32.Vec3) mgl32.Vec3 {
	if up.Len() > lookAtEpsilon && forward.Cross(up.Normalize()).Len() > 1e-3 {
		return up
	}
	for _, axis := range lookAtUpAxes {
		if forward.Cross(axis).Len() > 0.5 {
			return axis
		}
	}
	return lookAtUpAxes[0]
}

func (c *Camera) MatrixWorld() mgl32.Mat4 {
	return c.Transform.ObjectToWorld()
}

func (c *Camera) UpdateMatrixWorldInverse() {
	c.matrixWorldInverse = c.Transform.WorldToObject()
}

func (c *Camera) MatrixWorldInverse() mgl32.Mat4 {
	return c.matrixWorldInverse
}

func (c *Camera) Quaternion() mgl32.Quat {
	return c.Transform.Rotation
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.Transform.Position
}

// Dirty reports whether the camera moved or changed lens since the last ClearDirty.
func (c *Camera) Dirty() bool {
	return c.Transform.Dirty
}

func (c *Camera) ClearDirty() {
	c.Transform.Dirty = false
}
