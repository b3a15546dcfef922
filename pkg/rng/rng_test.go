package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_ReseedReproduces(t *testing.T) {
	s := New(12345)
	first := []float64{s.Float64(), s.Uniform(-0.8, 0.8), float64(s.IntBetween(6000, 45000))}

	s.Float64()
	s.Reseed(12345)
	second := []float64{s.Float64(), s.Uniform(-0.8, 0.8), float64(s.IntBetween(6000, 45000))}

	assert.Equal(t, first, second)
}

func TestStream_Bounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 2000; i++ {
		u := s.Uniform(0.30, 0.45)
		assert.GreaterOrEqual(t, u, 0.30)
		assert.Less(t, u, 0.45)

		n := s.IntBetween(2, 5)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestStream_Degenerate(t *testing.T) {
	s := New(1)
	assert.Equal(t, 4, s.IntBetween(4, 4))
	assert.Equal(t, 0, s.Index(1))
	assert.Equal(t, "only", Choice(s, []string{"only"}))
}
