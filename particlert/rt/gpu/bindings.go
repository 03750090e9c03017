package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Step rates for AttributeBinding.StepRate (the GL attribute divisor).
const (
	PerVertex   uint32 = 0
	PerInstance uint32 = 1
)

// AttributeBinding pairs a buffer owned elsewhere with an attribute slot.
type AttributeBinding struct {
	Name     string
	Buffer   Buffer
	Location AttribLocation
	Size     int32 // float components per element
	StepRate uint32
}

// BindAttributes re-establishes every binding from scratch. Nothing is
// assumed to survive from the previous frame, so the divisor is written for
// per-vertex streams too.
func BindAttributes(dev Device, bindings []AttributeBinding) {
	for _, b := range bindings {
		dev.BindBuffer(ArrayBuffer, b.Buffer)
		dev.VertexAttribPointer(b.Location, b.Size, Float, false, 0, 0)
		dev.VertexAttribDivisor(b.Location, b.StepRate)
		dev.EnableVertexAttribArray(b.Location)
		dev.BindBuffer(ArrayBuffer, 0)
	}
}

// TextureUniformBinding routes a texture through a unit to a sampler uniform.
type TextureUniformBinding struct {
	Texture Texture
	Unit    uint32
	Sampler UniformLocation
}

// BindTextures binds each texture to its unit and points its sampler at that unit.
func BindTextures(dev Device, bindings []TextureUniformBinding) {
	for _, b := range bindings {
		dev.ActiveTexture(b.Unit)
		dev.BindTexture(Texture2D, b.Texture)
		dev.Uniform1i(b.Sampler, int32(b.Unit))
	}
}

// UniformLocations are the program uniforms the particle shader exposes.
type UniformLocations struct {
	ModelMatrix      UniformLocation
	ViewMatrix       UniformLocation
	ProjectionMatrix UniformLocation
	NormalMatrix     UniformLocation
	CameraPosition   UniformLocation
	InstancePosition UniformLocation
	InstanceVelocity UniformLocation
}

// MatrixUniforms is the camera-derived data uploaded with UploadMatrices.
type MatrixUniforms struct {
	Model          mgl32.Mat4
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	Normal         mgl32.Mat3
	CameraPosition mgl32.Vec3
}

// UploadMatrices writes all matrix uniforms. mgl32 matrices are column-major
// like GL, so nothing is transposed.
func UploadMatrices(dev Device, locs UniformLocations, m MatrixUniforms) {
	dev.UniformMatrix4fv(locs.ModelMatrix, false, m.Model)
	dev.UniformMatrix4fv(locs.ViewMatrix, false, m.View)
	dev.UniformMatrix4fv(locs.ProjectionMatrix, false, m.Projection)
	dev.UniformMatrix3fv(locs.NormalMatrix, false, m.Normal)
	dev.Uniform3f(locs.CameraPosition, m.CameraPosition.X(), m.CameraPosition.Y(), m.CameraPosition.Z())
}
