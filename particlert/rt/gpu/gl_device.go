package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDevice forwards Device calls to the OpenGL context current on the calling thread.
type GLDevice struct {
	drawableSize func() (int, int)
}

// NewGLDevice loads the GL function pointers for the current context.
// drawableSize reports the framebuffer size, typically glfw's GetFramebufferSize.
func NewGLDevice(drawableSize func() (int, int)) (*GLDevice, error) {
	if drawableSize == nil {
		return nil, fmt.Errorf("gl device: drawable size func is nil")
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &GLDevice{drawableSize: drawableSize}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *GLDevice) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *GLDevice) Enable(c Capability) {
	gl.Enable(glCapability(c))
}

func (d *GLDevice) DepthFunc(fn CompareFunc) {
	gl.DepthFunc(glCompareFunc(fn))
}

func (d *GLDevice) DrawableSize() (int, int) {
	return d.drawableSize()
}

func (d *GLDevice) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *GLDevice) UseProgram(p Program) {
	gl.UseProgram(uint32(p))
}

func (d *GLDevice) BindVertexArray(vao VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

func (d *GLDevice) BindBuffer(target BufferTarget, buf Buffer) {
	gl.BindBuffer(glBufferTarget(target), uint32(buf))
}

func (d *GLDevice) VertexAttribPointer(loc AttribLocation, size int32, typ ComponentType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(loc), size, glComponentType(typ), normalized, stride, uintptr(offset))
}

func (d *GLDevice) VertexAttribDivisor(loc AttribLocation, divisor uint32) {
	gl.VertexAttribDivisor(uint32(loc), divisor)
}

func (d *GLDevice) EnableVertexAttribArray(loc AttribLocation) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *GLDevice) DrawArraysInstanced(mode Primitive, first, count, instances int32) {
	gl.DrawArraysInstanced(glPrimitive(mode), first, count, instances)
}

func (d *GLDevice) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (d *GLDevice) BindTexture(target TextureTarget, tex Texture) {
	gl.BindTexture(glTextureTarget(target), uint32(tex))
}

func (d *GLDevice) Uniform1i(loc UniformLocation, v int32) {
	gl.Uniform1i(int32(loc), v)
}

func (d *GLDevice) Uniform3f(loc UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (d *GLDevice) UniformMatrix3fv(loc UniformLocation, transpose bool, m mgl32.Mat3) {
	gl.UniformMatrix3fv(int32(loc), 1, transpose, &m[0])
}

func (d *GLDevice) UniformMatrix4fv(loc UniformLocation, transpose bool, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, transpose, &m[0])
}

func glCapability(c Capability) uint32 {
	switch c {
	case DepthTest:
		return gl.DEPTH_TEST
	}
	panic(fmt.Sprintf("gl device: unknown capability %d", c))
}

func glCompareFunc(fn CompareFunc) uint32 {
	switch fn {
	case Less:
		return gl.LESS
	case LessOrEqual:
		return gl.LEQUAL
	case Equal:
		return gl.EQUAL
	case Greater:
		return gl.GREATER
	case Always:
		return gl.ALWAYS
	}
	panic(fmt.Sprintf("gl device: unknown compare func %d", fn))
}

func glPrimitive(p Primitive) uint32 {
	switch p {
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	case Points:
		return gl.POINTS
	}
	panic(fmt.Sprintf("gl device: unknown primitive %d", p))
}

func glBufferTarget(t BufferTarget) uint32 {
	switch t {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER
	}
	panic(fmt.Sprintf("gl device: unknown buffer target %d", t))
}

func glTextureTarget(t TextureTarget) uint32 {
	switch t {
	case Texture2D:
		return gl.TEXTURE_2D
	}
	panic(fmt.Sprintf("gl device: unknown texture target %d", t))
}

func glComponentType(t ComponentType) uint32 {
	switch t {
	case Float:
		return gl.FLOAT
	}
	panic(fmt.Sprintf("gl device: unknown component type %d", t))
}
