package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded Device invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder is a Device that records every call instead of touching a GPU.
// It lets pipeline code be exercised without a live context.
type Recorder struct {
	Width  int
	Height int

	Calls []Call
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Names lists the recorded call names, in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

func (r *Recorder) Enable(c Capability)      { r.record("Enable", c) }
func (r *Recorder) DepthFunc(fn CompareFunc) { r.record("DepthFunc", fn) }

// DrawableSize is a query and is not recorded.
func (r *Recorder) DrawableSize() (int, int) { return r.Width, r.Height }

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) UseProgram(p Program)            { r.record("UseProgram", p) }
func (r *Recorder) BindVertexArray(vao VertexArray) { r.record("BindVertexArray", vao) }

func (r *Recorder) BindBuffer(target BufferTarget, buf Buffer) {
	r.record("BindBuffer", target, buf)
}

func (r *Recorder) VertexAttribPointer(loc AttribLocation, size int32, typ ComponentType, normalized bool, stride int32, offset int) {
	r.record("VertexAttribPointer", loc, size, typ, normalized, stride, offset)
}

func (r *Recorder) VertexAttribDivisor(loc AttribLocation, divisor uint32) {
	r.record("VertexAttribDivisor", loc, divisor)
}

func (r *Recorder) EnableVertexAttribArray(loc AttribLocation) {
	r.record("EnableVertexAttribArray", loc)
}

func (r *Recorder) DrawArraysInstanced(mode Primitive, first, count, instances int32) {
	r.record("DrawArraysInstanced", mode, first, count, instances)
}

func (r *Recorder) ActiveTexture(unit uint32) { r.record("ActiveTexture", unit) }

func (r *Recorder) BindTexture(target TextureTarget, tex Texture) {
	r.record("BindTexture", target, tex)
}

func (r *Recorder) Uniform1i(loc UniformLocation, v int32) { r.record("Uniform1i", loc, v) }

func (r *Recorder) Uniform3f(loc UniformLocation, x, y, z float32) {
	r.record("Uniform3f", loc, x, y, z)
}

func (r *Recorder) UniformMatrix3fv(loc UniformLocation, transpose bool, m mgl32.Mat3) {
	r.record("UniformMatrix3fv", loc, transpose, m)
}

func (r *Recorder) UniformMatrix4fv(loc UniformLocation, transpose bool, m mgl32.Mat4) {
	r.record("UniformMatrix4fv", loc, transpose, m)
}
