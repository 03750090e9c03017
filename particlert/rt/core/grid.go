package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidGrid = errors.New("invalid instance grid")

// MaxInstances bounds width x height so the count fits a GL instance count.
const MaxInstances = math.MaxInt32

// InstanceGrid is the fixed width x height layout of particle instances.
// Each instance reads its state from the texel at the same index in the
// simulation textures.
type InstanceGrid struct {
	width  int
	height int
}

func NewInstanceGrid(width, height int) (InstanceGrid, error) {
	if width < 1 || height < 1 {
		return InstanceGrid{}, fmt.Errorf("%w: must be at least 1x1, got %dx%d", ErrInvalidGrid, width, height)
	}
	if int64(width)*int64(height) > MaxInstances {
		return InstanceGrid{}, fmt.Errorf("%w: %dx%d exceeds %d instances", ErrInvalidGrid, width, height, MaxInstances)
	}
	return InstanceGrid{width: width, height: height}, nil
}

func (g InstanceGrid) Width() int  { return g.width }
func (g InstanceGrid) Height() int { return g.height }

// Count is the number of instances drawn each frame.
func (g InstanceGrid) Count() int {
	return g.width * g.height
}

// TexelCenter returns the normalized texture coordinate of instance i,
// laid out row-major and sampled at texel centers.
func (g InstanceGrid) TexelCenter(i int) mgl32.Vec2 {
	x := i % g.width
	y := i / g.width
	return mgl32.Vec2{
		(float32(x) + 0.5) / float32(g.width),
		(float32(y) + 0.5) / float32(g.height),
	}
}

// TexelCenters packs TexelCenter for every instance as interleaved u,v floats.
func (g InstanceGrid) TexelCenters() []float32 {
	out := make([]float32, 0, g.Count()*2)
	for i := 0; i < g.Count(); i++ {
		uv := g.TexelCenter(i)
		out = append(out, uv[0], uv[1])
	}
	return out
}
