package app

import (
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"
)

// SimulationStage advances particle state on the GPU and exposes it as two
// textures indexed by particle. Update must be safe to call before the stage
// has finished building its own resources.
type SimulationStage interface {
	Update()
	PositionTexture() gpu.Texture
	VelocityTexture() gpu.Texture
	Destroy()
}

// GeometryBuffers are the vertex and instance buffers of the particle mesh.
type GeometryBuffers struct {
	Vertices          gpu.Buffer
	Normals           gpu.Buffer
	Texcoords         gpu.Buffer
	InstanceColors    gpu.Buffer
	InstanceTexcoords gpu.Buffer
}

// GeometryAttributes are the attribute slots of the particle program.
type GeometryAttributes struct {
	Position          gpu.AttribLocation
	Normal            gpu.AttribLocation
	UV                gpu.AttribLocation
	InstanceColors    gpu.AttribLocation
	InstanceTexcoords gpu.AttribLocation
}

// GeometryResource owns the particle program, its vertex array and buffers.
// Its handles are only valid once the ready callback handed to its factory
// has fired.
type GeometryResource interface {
	Program() gpu.Program
	VertexArray() gpu.VertexArray
	Buffers() GeometryBuffers
	Attributes() GeometryAttributes
	Uniforms() gpu.UniformLocations
	// VertCount is the number of vertices drawn per particle.
	VertCount() int32
	Destroy()
}

// SimulationFactory builds the simulation stage on the given device.
type SimulationFactory func(dev gpu.Device) SimulationStage

// GeometryFactory builds the geometry resource and arranges for onReady to be
// called exactly once when its handles become valid. onReady may be called
// before the factory returns.
type GeometryFactory func(dev gpu.Device, onReady func()) GeometryResource

// Logger is the logging surface the pipeline uses.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}
