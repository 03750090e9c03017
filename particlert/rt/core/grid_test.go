package core

import (
	"errors"
	"math"
	"testing"
)

func TestInstanceGridCount(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {16, 16}, {256, 128}}
	for _, s := range sizes {
		g, err := NewInstanceGrid(s[0], s[1])
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", s, err)
		}
		if g.Count() != s[0]*s[1] {
			t.Errorf("grid %dx%d: expected %d instances, got %d", s[0], s[1], s[0]*s[1], g.Count())
		}
	}
}

func TestInstanceGridRejectsEmpty(t *testing.T) {
	for _, s := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		if _, err := NewInstanceGrid(s[0], s[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("grid %v: expected ErrInvalidGrid, got %v", s, err)
		}
	}
}

func TestInstanceGridRejectsOversized(t *testing.T) {
	for _, s := range [][2]int{{65536, 32768}, {MaxInstances, 2}, {2, MaxInstances}} {
		if _, err := NewInstanceGrid(s[0], s[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("grid %v: expected ErrInvalidGrid, got %v", s, err)
		}
	}

	g, err := NewInstanceGrid(MaxInstances, 1)
	if err != nil {
		t.Fatalf("grid of exactly %d instances should be accepted: %v", MaxInstances, err)
	}
	if int32(g.Count()) != math.MaxInt32 {
		t.Errorf("expected count to fit int32, got %d", g.Count())
	}
}

func TestInstanceGridTexelCenters(t *testing.T) {
	g, err := NewInstanceGrid(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	first := g.TexelCenter(0)
	if !closeEnough(first[0], 0.125, 1e-6) || !closeEnough(first[1], 0.25, 1e-6) {
		t.Errorf("unexpected first texel center %v", first)
	}
	last := g.TexelCenter(7)
	if !closeEnough(last[0], 0.875, 1e-6) || !closeEnough(last[1], 0.75, 1e-6) {
		t.Errorf("unexpected last texel center %v", last)
	}

	packed := g.TexelCenters()
	if len(packed) != 16 {
		t.Fatalf("expected 16 floats, got %d", len(packed))
	}
	if packed[14] != last[0] || packed[15] != last[1] {
		t.Errorf("packed data out of order: %v", packed[14:])
	}
}
