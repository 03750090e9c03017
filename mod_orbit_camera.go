package gekko

import (
	"math"

	"github.com/gekko3d/gekko-particles/particlert/rt/core"

	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCameraModule circles the particle camera around a target point.
// Install it after the particle renderer so the camera resource exists, and
// after InputModule to get pause and reset keys.
type OrbitCameraModule struct {
	Radius float32
	Height float32
	// Speed is in degrees per second.
	Speed  float32
	Target mgl32.Vec3
}

type OrbitCamera struct {
	Radius float32
	Height float32
	Speed  float32
	Target mgl32.Vec3
	Yaw    float32 // degrees
	Paused bool
}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	orbit := &OrbitCamera{
		Radius: m.Radius,
		Height: m.Height,
		Speed:  m.Speed,
		Target: m.Target,
	}
	if orbit.Radius <= 0 {
		orbit.Radius = 300
	}
	if orbit.Speed == 0 {
		orbit.Speed = 10
	}
	cmd.AddResources(orbit)
	if _, ok := Resource[Input](app); ok {
		app.UseSystem(
			System(orbitCameraInputSystem).
				InStage(Update).
				RunAlways(),
		)
	}
	app.UseSystem(
		System(orbitCameraSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

func orbitCameraInputSystem(input *Input, orbit *OrbitCamera) {
	if input.JustPressed[KeySpace] {
		orbit.Paused = !orbit.Paused
	}
	if input.JustPressed[KeyR] {
		orbit.Yaw = 0
	}
}

func orbitCameraSystem(orbit *OrbitCamera, cam *core.Camera, t *Time) {
	dt := t.Seconds()
	if dt <= 0 || orbit.Paused {
		return
	}
	orbit.Yaw = float32(math.Mod(float64(orbit.Yaw+orbit.Speed*dt), 360))
	cam.LookAt(orbit.Eye(), orbit.Target, mgl32.Vec3{0, 1, 0})
}

// Eye is the camera position for the current yaw.
func (o *OrbitCamera) Eye() mgl32.Vec3 {
	yawRad := float64(mgl32.DegToRad(o.Yaw))
	return o.Target.Add(mgl32.Vec3{
		float32(math.Sin(yawRad)) * o.Radius,
		o.Height,
		float32(math.Cos(yawRad)) * o.Radius,
	})
}
