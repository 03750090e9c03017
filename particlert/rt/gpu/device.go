package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Opaque GPU handles. Zero means "none" and unbinds where a bind call accepts it.
type (
	Program         uint32
	VertexArray     uint32
	Buffer          uint32
	Texture         uint32
	AttribLocation  uint32
	UniformLocation int32
)

type Capability uint32

const (
	DepthTest Capability = iota + 1
)

type CompareFunc uint32

const (
	Less CompareFunc = iota + 1
	LessOrEqual
	Equal
	Greater
	Always
)

type Primitive uint32

const (
	TriangleStrip Primitive = iota + 1
	Points
)

func (p Primitive) String() string {
	switch p {
	case TriangleStrip:
		return "triangle_strip"
	case Points:
		return "points"
	}
	return "unknown"
}

type BufferTarget uint32

const (
	ArrayBuffer BufferTarget = iota + 1
)

type TextureTarget uint32

const (
	Texture2D TextureTarget = iota + 1
)

type ComponentType uint32

const (
	Float ComponentType = iota + 1
)

// Device is the slice of a GL-style graphics context the particle renderer
// drives. GLDevice talks to a real context; Recorder captures calls for tests.
type Device interface {
	Enable(c Capability)
	DepthFunc(fn CompareFunc)

	// DrawableSize is the current size of the default framebuffer in pixels.
	DrawableSize() (width, height int)
	Viewport(x, y, width, height int32)

	UseProgram(p Program)
	BindVertexArray(vao VertexArray)
	BindBuffer(target BufferTarget, buf Buffer)
	VertexAttribPointer(loc AttribLocation, size int32, typ ComponentType, normalized bool, stride int32, offset int)
	VertexAttribDivisor(loc AttribLocation, divisor uint32)
	EnableVertexAttribArray(loc AttribLocation)
	DrawArraysInstanced(mode Primitive, first, count, instances int32)

	ActiveTexture(unit uint32)
	BindTexture(target TextureTarget, tex Texture)

	Uniform1i(loc UniformLocation, v int32)
	Uniform3f(loc UniformLocation, x, y, z float32)
	UniformMatrix3fv(loc UniformLocation, transpose bool, m mgl32.Mat3)
	UniformMatrix4fv(loc UniformLocation, transpose bool, m mgl32.Mat4)
}
