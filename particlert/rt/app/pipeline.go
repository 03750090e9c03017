package app

import (
	"errors"
	"fmt"

	"github.com/gekko3d/gekko-particles/particlert/rt/core"
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"

	"github.com/google/uuid"
)

var (
	ErrNilDevice        = errors.New("particle pipeline: device is nil")
	ErrNilCamera        = errors.New("particle pipeline: camera is nil")
	ErrNilCollaborator  = errors.New("particle pipeline: simulation or geometry factory is nil")
	ErrInvalidPrimitive = errors.New("particle pipeline: unsupported primitive")
)

// Readiness gates every GPU-touching operation of the pipeline.
type Readiness int

const (
	NotReady Readiness = iota
	Ready
)

func (r Readiness) String() string {
	if r == Ready {
		return "ready"
	}
	return "not ready"
}

type PipelineConfig struct {
	Device gpu.Device
	Camera core.CameraSource

	GridWidth  int
	GridHeight int

	NewSimulation SimulationFactory
	NewGeometry   GeometryFactory

	// Primitive defaults to gpu.TriangleStrip. gpu.Points draws point sprites.
	Primitive gpu.Primitive

	// SkipDeviceSetup leaves depth configuration to the host, which must then
	// call ConfigureDevice itself.
	SkipDeviceSetup bool

	Logger Logger
}

// RenderPipeline draws a fixed grid of simulated particles as one instanced
// draw per frame. It owns the simulation stage and the geometry resource and
// only borrows the device and the camera.
type RenderPipeline struct {
	ID uuid.UUID

	device    gpu.Device
	camera    core.CameraSource
	grid      core.InstanceGrid
	primitive gpu.Primitive
	log       Logger

	simulation SimulationStage
	geometry   GeometryResource

	readiness     Readiness
	geometryReady bool
	destroyed     bool
}

// ConfigureDevice enables depth testing with a less-or-equal comparison.
// This is device-global state that is never reverted.
func ConfigureDevice(dev gpu.Device) {
	dev.Enable(gpu.DepthTest)
	dev.DepthFunc(gpu.LessOrEqual)
}

// NewRenderPipeline builds the simulation stage and the geometry resource.
// GPU resources need not exist yet: rendering stays disabled until the
// geometry resource reports ready.
func NewRenderPipeline(cfg PipelineConfig) (*RenderPipeline, error) {
	if cfg.Device == nil {
		return nil, ErrNilDevice
	}
	if cfg.Camera == nil {
		return nil, ErrNilCamera
	}
	if cfg.NewSimulation == nil || cfg.NewGeometry == nil {
		return nil, ErrNilCollaborator
	}
	grid, err := core.NewInstanceGrid(cfg.GridWidth, cfg.GridHeight)
	if err != nil {
		return nil, fmt.Errorf("particle pipeline: %w", err)
	}
	primitive := cfg.Primitive
	if primitive == 0 {
		primitive = gpu.TriangleStrip
	}
	if primitive != gpu.TriangleStrip && primitive != gpu.Points {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPrimitive, primitive)
	}
	log := cfg.Logger
	if log == nil {
		log = nopLogger{}
	}

	p := &RenderPipeline{
		ID:        uuid.New(),
		device:    cfg.Device,
		camera:    cfg.Camera,
		grid:      grid,
		primitive: primitive,
		log:       log,
	}

	if !cfg.SkipDeviceSetup {
		ConfigureDevice(p.device)
	}

	p.simulation = cfg.NewSimulation(p.device)
	if p.simulation == nil {
		return nil, fmt.Errorf("%w: simulation factory returned nil", ErrNilCollaborator)
	}
	p.geometry = cfg.NewGeometry(p.device, p.onGeometryReady)
	if p.geometry == nil {
		p.simulation.Destroy()
		return nil, fmt.Errorf("%w: geometry factory returned nil", ErrNilCollaborator)
	}

	// The geometry may have completed synchronously inside its factory.
	if p.geometryReady {
		p.markReady()
	}

	p.log.Infof("particle pipeline %s created: %dx%d instances (%d), primitive %s",
		p.ID, grid.Width(), grid.Height(), grid.Count(), primitive)
	return p, nil
}

func (p *RenderPipeline) onGeometryReady() {
	if p.geometryReady || p.destroyed {
		return
	}
	p.geometryReady = true
	if p.geometry == nil {
		// Still inside the factory; NewRenderPipeline finishes the transition.
		return
	}
	p.markReady()
}

func (p *RenderPipeline) markReady() {
	if p.readiness == Ready {
		return
	}
	p.readiness = Ready
	p.log.Infof("particle pipeline %s ready", p.ID)
	p.UpdateMatrixUniforms()
}

func (p *RenderPipeline) Readiness() Readiness {
	return p.readiness
}

func (p *RenderPipeline) Grid() core.InstanceGrid {
	return p.grid
}

// InstanceCount is the number of particles drawn every frame.
func (p *RenderPipeline) InstanceCount() int {
	return p.grid.Count()
}

// Update advances the simulation one step and rebinds its output textures.
// Call once per frame, before Render.
func (p *RenderPipeline) Update() {
	if p.destroyed {
		return
	}
	p.simulation.Update()
	p.UpdateTextureUniforms(p.simulation.PositionTexture(), p.simulation.VelocityTexture())
}

// Render issues the instanced draw for all particles. It does nothing until
// the pipeline is ready.
func (p *RenderPipeline) Render() {
	if p.readiness != Ready {
		return
	}
	dev := p.device

	w, h := dev.DrawableSize()
	dev.Viewport(0, 0, int32(w), int32(h))

	dev.UseProgram(p.geometry.Program())
	dev.BindVertexArray(p.geometry.VertexArray())

	p.updateAttributes()

	dev.DrawArraysInstanced(p.primitive, 0, p.geometry.VertCount(), int32(p.grid.Count()))

	dev.BindVertexArray(0)
}

func (p *RenderPipeline) updateAttributes() {
	gpu.BindAttributes(p.device, VertexAttributeBindings(p.geometry))
	gpu.BindAttributes(p.device, InstanceAttributeBindings(p.geometry))
}

// UpdateMatrixUniforms derives the camera frame and uploads it. It uploads
// unconditionally whenever called once the pipeline is ready.
func (p *RenderPipeline) UpdateMatrixUniforms() {
	if p.readiness != Ready {
		return
	}
	frame := core.DeriveCameraFrame(p.camera)

	p.device.UseProgram(p.geometry.Program())
	gpu.UploadMatrices(p.device, p.geometry.Uniforms(), gpu.MatrixUniforms{
		Model:          frame.Model,
		View:           frame.View,
		Projection:     frame.Projection,
		Normal:         frame.Normal,
		CameraPosition: frame.CameraPosition,
	})
}

// UpdateTextureUniforms binds the simulation outputs to their texture units.
// Texture contents change every step even when the handles do not, so this
// runs every frame after Update.
func (p *RenderPipeline) UpdateTextureUniforms(position, velocity gpu.Texture) {
	if p.readiness != Ready {
		return
	}
	p.device.UseProgram(p.geometry.Program())
	gpu.BindTextures(p.device, TextureBindings(p.geometry.Uniforms(), position, velocity))
}

// Destroy releases the simulation stage and then the geometry resource.
// Calling it again is a no-op.
func (p *RenderPipeline) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.readiness = NotReady

	if p.simulation != nil {
		p.simulation.Destroy()
	}
	if p.geometry != nil {
		p.geometry.Destroy()
	}
	p.log.Infof("particle pipeline %s destroyed", p.ID)
}
