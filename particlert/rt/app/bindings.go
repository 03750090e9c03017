package app

import (
	"github.com/gekko3d/gekko-particles/particlert/rt/gpu"
)

// Texture units used for the simulation outputs.
const (
	PositionTextureUnit uint32 = 0
	VelocityTextureUnit uint32 = 1
)

// VertexAttributeBindings lists the per-vertex streams of the particle mesh.
func VertexAttributeBindings(geom GeometryResource) []gpu.AttributeBinding {
	buffers := geom.Buffers()
	attrs := geom.Attributes()
	return []gpu.AttributeBinding{
		{Name: "position", Buffer: buffers.Vertices, Location: attrs.Position, Size: 3, StepRate: gpu.PerVertex},
		{Name: "normal", Buffer: buffers.Normals, Location: attrs.Normal, Size: 3, StepRate: gpu.PerVertex},
		{Name: "uv", Buffer: buffers.Texcoords, Location: attrs.UV, Size: 2, StepRate: gpu.PerVertex},
	}
}

// InstanceAttributeBindings lists the per-instance streams. They advance once
// per instance, which gives each particle its own color and texel lookup.
func InstanceAttributeBindings(geom GeometryResource) []gpu.AttributeBinding {
	buffers := geom.Buffers()
	attrs := geom.Attributes()
	return []gpu.AttributeBinding{
		{Name: "instanceColors", Buffer: buffers.InstanceColors, Location: attrs.InstanceColors, Size: 3, StepRate: gpu.PerInstance},
		{Name: "instanceTexcoords", Buffer: buffers.InstanceTexcoords, Location: attrs.InstanceTexcoords, Size: 2, StepRate: gpu.PerInstance},
	}
}

// TextureBindings routes the position and velocity textures to their own units.
func TextureBindings(uniforms gpu.UniformLocations, position, velocity gpu.Texture) []gpu.TextureUniformBinding {
	return []gpu.TextureUniformBinding{
		{Texture: position, Unit: PositionTextureUnit, Sampler: uniforms.InstancePosition},
		{Texture: velocity, Unit: VelocityTextureUnit, Sampler: uniforms.InstanceVelocity},
	}
}
