package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func closeEnough(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func assertMat4(t *testing.T, name string, got, want mgl32.Mat4) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("%s mismatch\n got: %v\nwant: %v", name, got, want)
	}
}

func TestDeriveCameraFrame_IdentityOrientation(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(60), 1.5, 0.1, 100)
	cam.Transform.Position = mgl32.Vec3{1, 2, 5}

	frame := DeriveCameraFrame(cam)

	want := mgl32.Translate3D(-1, -2, -5)
	assertMat4(t, "view", frame.View, want)
	assertMat4(t, "rotation inverse", frame.RotationInverse, mgl32.Ident4())
}

func TestDeriveCameraFrame_Yaw90(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(60), 1, 0.1, 100)
	cam.Transform.Position = mgl32.Vec3{0, 0, 10}
	cam.Transform.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	frame := DeriveCameraFrame(cam)

	// world = T * Ry(90), so worldInverse = Ry(-90) * T^-1 and the view
	// applies the inverse rotation a second time: Ry(-180) * T^-1.
	want := mgl32.HomogRotate3DY(mgl32.DegToRad(-180)).Mul4(mgl32.Translate3D(0, 0, -10))
	assertMat4(t, "view", frame.View, want)
	assertMat4(t, "rotation inverse", frame.RotationInverse, mgl32.HomogRotate3DY(mgl32.DegToRad(-90)))
}

func TestDeriveCameraFrame_YawPitch(t *testing.T) {
	yaw := mgl32.DegToRad(30)
	pitch := mgl32.DegToRad(-20)

	cam := NewCamera(mgl32.DegToRad(60), 1, 0.1, 100)
	cam.Transform.Position = mgl32.Vec3{3, -1, 7}
	cam.Transform.Rotation = mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).
		Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))

	frame := DeriveCameraFrame(cam)

	// R = Ry(yaw) * Rx(pitch), R^-1 = Rx(-pitch) * Ry(-yaw)
	rInv := mgl32.HomogRotate3DX(-pitch).Mul4(mgl32.HomogRotate3DY(-yaw))
	want := rInv.Mul4(rInv).Mul4(mgl32.Translate3D(-3, 1, -7))
	assertMat4(t, "view", frame.View, want)
	assertMat4(t, "world inverse", frame.WorldInverse, rInv.Mul4(mgl32.Translate3D(-3, 1, -7)))
}

func TestDeriveCameraFrame_ModelAndNormalAreIdentity(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(45), 2, 1, 50)
	cam.LookAt(mgl32.Vec3{10, 4, -3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	frame := DeriveCameraFrame(cam)

	assertMat4(t, "model", frame.Model, mgl32.Ident4())
	if !frame.Normal.ApproxEqualThreshold(mgl32.Ident3(), 1e-6) {
		t.Errorf("normal matrix should be identity, got %v", frame.Normal)
	}
	if frame.CameraPosition != (mgl32.Vec3{10, 4, -3}) {
		t.Errorf("camera position not forwarded, got %v", frame.CameraPosition)
	}
	assertMat4(t, "projection", frame.Projection, mgl32.Perspective(mgl32.DegToRad(45), 2, 1, 50))
}

func TestDeriveCameraFrame_RefreshesStaleInverse(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(60), 1, 0.1, 100)
	cam.Transform.Position = mgl32.Vec3{0, 0, 4}
	cam.UpdateMatrixWorldInverse()

	cam.Transform.Position = mgl32.Vec3{0, 0, 8}
	if cam.MatrixWorldInverse().At(2, 3) != -4 {
		t.Fatalf("inverse should stay stale until updated, got %v", cam.MatrixWorldInverse())
	}

	frame := DeriveCameraFrame(cam)
	if !closeEnough(frame.WorldInverse.At(2, 3), -8, 1e-5) {
		t.Errorf("expected refreshed inverse translation -8, got %f", frame.WorldInverse.At(2, 3))
	}
}

func TestCameraLookAtFacesTarget(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(60), 1, 0.1, 100)
	eye := mgl32.Vec3{0, 0, 10}
	cam.LookAt(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	// Cameras look down their local -Z.
	forward := cam.Quaternion().Rotate(mgl32.Vec3{0, 0, -1})
	if !closeEnough(forward.Z(), -1, 1e-5) {
		t.Errorf("camera should face -Z towards the origin, got %v", forward)
	}
	if !cam.Dirty() {
		t.Error("LookAt should mark the camera dirty")
	}
	cam.ClearDirty()
	if cam.Dirty() {
		t.Error("ClearDirty should reset the dirty flag")
	}
}

func TestCameraLookAtParallelUp(t *testing.T) {
	for _, eye := range []mgl32.Vec3{{0, 300, 0}, {0, -50, 0}} {
		cam := NewCamera(mgl32.DegToRad(45), 1, 0.1, 1000)
		cam.LookAt(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

		q := cam.Quaternion()
		if hasNaN(q.V[:]) || math.IsNaN(float64(q.W)) {
			t.Fatalf("eye %v: rotation is not finite: %v", eye, q)
		}
		want := mgl32.Vec3{}.Sub(eye).Normalize()
		if forward := q.Rotate(mgl32.Vec3{0, 0, -1}); !forward.ApproxEqualThreshold(want, 1e-4) {
			t.Errorf("eye %v: camera should face %v, got %v", eye, want, forward)
		}
		view := DeriveCameraFrame(cam).View
		if hasNaN(view[:]) {
			t.Errorf("eye %v: view matrix is not finite: %v", eye, view)
		}
	}
}

func TestCameraLookAtSamePoint(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(45), 1, 0.1, 1000)
	cam.LookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	before := cam.Quaternion()

	cam.LookAt(mgl32.Vec3{3, 3, 3}, mgl32.Vec3{3, 3, 3}, mgl32.Vec3{0, 1, 0})

	if cam.Position() != (mgl32.Vec3{3, 3, 3}) {
		t.Errorf("position should still move, got %v", cam.Position())
	}
	if !cam.Quaternion().ApproxEqualThreshold(before, 1e-6) {
		t.Errorf("orientation should be kept, got %v want %v", cam.Quaternion(), before)
	}
	view := DeriveCameraFrame(cam).View
	if hasNaN(view[:]) {
		t.Error("view matrix is not finite")
	}
}

func hasNaN(values []float32) bool {
	for _, v := range values {
		if math.IsNaN(float64(v)) {
			return true
		}
	}
	return false
}
