package gekko

import (
	"time"

	"github.com/gekko3d/gekko-particles/particlert/rt/app"
	"github.com/gekko3d/gekko-particles/particlert/rt/core"
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

type (
	ParticleSimulationFactory = app.SimulationFactory
	ParticleGeometryFactory   = app.GeometryFactory
)

// ParticleRenderModule renders a fixed grid of GPU-simulated particles.
// The simulation stage and the geometry resource are supplied by the host
// through their factories; the module drives them once per frame.
type ParticleRenderModule struct {
	Config        Config
	NewSimulation ParticleSimulationFactory
	NewGeometry   ParticleGeometryFactory

	// Device overrides the GL device created from the shared window.
	Device gpu.Device
	// ConfigPath enables hot reload of the log level and camera lens.
	ConfigPath string
}

// ParticleRenderState is the resource the particle systems share.
type ParticleRenderState struct {
	Pipeline *app.RenderPipeline
	Camera   *core.Camera
	Device   gpu.Device
	Config   Config

	watcher *ConfigWatcher
	aspect  float32

	statsStart  time.Time
	statsFrames int
}

func (m ParticleRenderModule) Install(a *App, cmd *Commands) {
	ensureSingleRenderer(a, string(RendererParticles))
	log := a.Logger()

	cfg := m.Config
	if err := cfg.Validate(); err != nil {
		log.Errorf("particles: %v", err)
		panic(err)
	}
	primitive, _ := cfg.Render.primitive()

	dev := m.Device
	if dev == nil {
		ensureWindowResource(a, cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
		ws, _ := Resource[WindowState](a)
		glDev, err := gpu.NewGLDevice(ws.FramebufferSize)
		if err != nil {
			log.Errorf("particles: %v", err)
			panic(err)
		}
		log.Infof("OpenGL version: %s", glDev.Version())
		dev = glDev
	}

	camera := core.NewCamera(mgl32.DegToRad(cfg.Camera.FovDegrees), drawableAspect(dev), cfg.Camera.Near, cfg.Camera.Far)
	camera.LookAt(cfg.Camera.position(), cfg.Camera.target(), mgl32.Vec3{0, 1, 0})

	pipeline, err := app.NewRenderPipeline(app.PipelineConfig{
		Device:          dev,
		Camera:          camera,
		GridWidth:       cfg.Grid.Width,
		GridHeight:      cfg.Grid.Height,
		NewSimulation:   m.NewSimulation,
		NewGeometry:     m.NewGeometry,
		Primitive:       primitive,
		SkipDeviceSetup: !cfg.Render.ConfigureDevice,
		Logger:          log,
	})
	if err != nil {
		log.Errorf("particles: %v", err)
		panic(err)
	}

	state := &ParticleRenderState{
		Pipeline:   pipeline,
		Camera:     camera,
		Device:     dev,
		Config:     cfg,
		aspect:     camera.Aspect,
		statsStart: time.Now(),
	}

	if m.ConfigPath != "" {
		w, err := WatchConfig(m.ConfigPath, log)
		if err != nil {
			log.Warnf("particles: config hot reload disabled: %v", err)
		} else {
			state.watcher = w
			a.OnShutdown(func() { _ = w.Close() })
			a.UseSystem(System(particlesConfigReloadSystem).InStage(PreUpdate).RunAlways())
		}
	}

	cmd.AddResources(state, camera)

	a.UseSystem(System(particlesUpdateSystem).InStage(Update).RunAlways())
	a.UseSystem(System(particlesCameraSystem).InStage(PreRender).RunAlways())
	a.UseSystem(System(particlesRenderSystem).InStage(Render).RunAlways())
	a.UseSystem(System(particlesStatsSystem).InStage(Finale).RunAlways())

	a.OnShutdown(pipeline.Destroy)
}

func drawableAspect(dev gpu.Device) float32 {
	w, h := dev.DrawableSize()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// particlesUpdateSystem advances the simulation and rebinds its textures.
func particlesUpdateSystem(state *ParticleRenderState) {
	state.Pipeline.Update()
}

// particlesCameraSystem follows drawable resizes and re-uploads the camera
// matrices whenever the camera moved.
func particlesCameraSystem(state *ParticleRenderState) {
	if aspect := drawableAspect(state.Device); aspect != state.aspect {
		state.aspect = aspect
		state.Camera.SetAspect(aspect)
	}
	if !state.Camera.Dirty() {
		return
	}
	state.Pipeline.UpdateMatrixUniforms()
	state.Camera.ClearDirty()
}

func particlesRenderSystem(state *ParticleRenderState) {
	state.Pipeline.Render()
}

func particlesConfigReloadSystem(state *ParticleRenderState, cmd *Commands) {
	next, ok := state.watcher.Poll()
	if !ok {
		return
	}
	applyConfigReload(state, next, cmd.Logger())
}

// applyConfigReload applies the settings that may change at runtime. The
// instance grid and primitive are fixed for the lifetime of the pipeline.
func applyConfigReload(state *ParticleRenderState, next Config, log Logger) {
	log.SetDebug(next.Log.Debug)

	if next.Grid != state.Config.Grid {
		log.Warnf("particles: grid %dx%d cannot change at runtime, keeping %dx%d",
			next.Grid.Width, next.Grid.Height, state.Config.Grid.Width, state.Config.Grid.Height)
		next.Grid = state.Config.Grid
	}
	if next.Render != state.Config.Render {
		log.Warnf("particles: render settings cannot change at runtime")
		next.Render = state.Config.Render
	}
	if next.Camera.lensChanged(state.Config.Camera) {
		state.Camera.SetPerspective(mgl32.DegToRad(next.Camera.FovDegrees), state.aspect, next.Camera.Near, next.Camera.Far)
		log.Infof("particles: camera lens fov=%v near=%v far=%v", next.Camera.FovDegrees, next.Camera.Near, next.Camera.Far)
	}
	state.Config = next
}

const statsInterval = 5 * time.Second

func particlesStatsSystem(state *ParticleRenderState, cmd *Commands) {
	state.statsFrames++
	elapsed := time.Since(state.statsStart)
	if elapsed < statsInterval {
		return
	}
	fps := float64(state.statsFrames) / elapsed.Seconds()
	cmd.Logger().Debugf("particles: %.1f fps, %d instances, %s",
		fps, state.Pipeline.InstanceCount(), state.Pipeline.Readiness())
	state.statsStart = time.Now()
	state.statsFrames = 0
}
