package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeShallow(t *testing.T) {
	base := map[string]interface{}{"color": "blue", "font": "serif"}
	patch := map[string]interface{}{"color": "red", "spacing": 2}

	got := MergeShallow(base, patch)

	assert.Equal(t, "red", got["color"])
	assert.Equal(t, "serif", got["font"])
	assert.Equal(t, 2, got["spacing"])
	// base is not mutated
	assert.Equal(t, "blue", base["color"])
}

func TestMergeShallow_NilCases(t *testing.T) {
	base := map[string]interface{}{"a": 1}
	assert.Equal(t, base, MergeShallow(base, nil))

	got := MergeShallow(nil, map[string]interface{}{"b": 2})
	assert.Equal(t, 2, got["b"])
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	src := map[string]interface{}{"a": 1}
	dst := Clone(src)
	dst["a"] = 2
	assert.Equal(t, 1, src["a"])
}
