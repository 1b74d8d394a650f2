package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt3AddSub(t *testing.T) {
	a := Int3{1, 2, 3}
	b := Int3{4, 5, 6}
	assert.Equal(t, Int3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Int3{-3, -3, -3}, a.Sub(b))
}

func TestInt3With(t *testing.T) {
	a := Int3{1, 2, 3}
	assert.Equal(t, Int3{1, 9, 3}, a.With(1, 9))
}

func TestReal3Arithmetic(t *testing.T) {
	a := Real3{1, 2, 3}
	b := Real3{2, 2, 2}
	assert.Equal(t, Real3{3, 4, 5}, a.Add(b))
	assert.Equal(t, Real3{-1, 0, 1}, a.Sub(b))
	assert.Equal(t, Real3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Real3{2, 4, 6}, a.Mul(b))
}

func TestSlowFast(t *testing.T) {
	cases := []struct {
		dir, slow, fast int
	}{
		{0, 1, 2},
		{1, 0, 2},
		{2, 0, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.slow, Slow(c.dir))
		assert.Equal(t, c.fast, Fast(c.dir))
	}
}
