package app

import (
	"github.com/gekko3d/gekko-particles/particlert/rt/core"
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"
)

// events is shared by fakes so tests can assert cross-collaborator ordering.
type events struct {
	log []string
}

func (e *events) add(s string) { e.log = append(e.log, s) }

type fakeSimulation struct {
	ev        *events
	position  gpu.Texture
	velocity  gpu.Texture
	updates   int
	destroyed int
}

func (s *fakeSimulation) Update() {
	s.updates++
	s.ev.add("simulation.update")
}
func (s *fakeSimulation) PositionTexture() gpu.Texture { return s.position }
func (s *fakeSimulation) VelocityTexture() gpu.Texture { return s.velocity }
func (s *fakeSimulation) Destroy() {
	s.destroyed++
	s.ev.add("simulation.destroy")
}

type fakeGeometry struct {
	ev        *events
	onReady   func()
	destroyed int
}

func (g *fakeGeometry) Program() gpu.Program         { return 7 }
func (g *fakeGeometry) VertexArray() gpu.VertexArray { return 9 }
func (g *fakeGeometry) Buffers() GeometryBuffers {
	return GeometryBuffers{Vertices: 101, Normals: 102, Texcoords: 103, InstanceColors: 104, InstanceTexcoords: 105}
}
func (g *fakeGeometry) Attributes() GeometryAttributes {
	return GeometryAttributes{Position: 0, Normal: 1, UV: 2, InstanceColors: 3, InstanceTexcoords: 4}
}
func (g *fakeGeometry) Uniforms() gpu.UniformLocations {
	return gpu.UniformLocations{
		ModelMatrix:      10,
		ViewMatrix:       11,
		ProjectionMatrix: 12,
		NormalMatrix:     13,
		CameraPosition:   14,
		InstancePosition: 15,
		InstanceVelocity: 16,
	}
}
func (g *fakeGeometry) VertCount() int32 { return 4 }
func (g *fakeGeometry) Destroy() {
	g.destroyed++
	g.ev.add("geometry.destroy")
}

// fixture wires fakes into a pipeline config. With syncReady the geometry
// reports ready from inside its factory.
type fixture struct {
	ev   *events
	sim  *fakeSimulation
	geom *fakeGeometry
	rec  *gpu.Recorder
}

func newFixture() *fixture {
	ev := &events{}
	return &fixture{
		ev:   ev,
		sim:  &fakeSimulation{ev: ev, position: 31, velocity: 32},
		geom: &fakeGeometry{ev: ev},
		rec:  gpu.NewRecorder(1024, 768),
	}
}

func (f *fixture) config(camera core.CameraSource, w, h int, syncReady bool) PipelineConfig {
	return PipelineConfig{
		Device:     f.rec,
		Camera:     camera,
		GridWidth:  w,
		GridHeight: h,
		NewSimulation: func(dev gpu.Device) SimulationStage {
			return f.sim
		},
		NewGeometry: func(dev gpu.Device, onReady func()) GeometryResource {
			f.geom.onReady = onReady
			if syncReady {
				onReady()
			}
			return f.geom
		},
	}
}
