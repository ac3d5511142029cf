package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	m := MaskOf(0, 3, 31)
	assert.Equal(t, Mask(1|8|1<<31), m)
	assert.True(t, m.Contains(3))
	assert.False(t, m.Contains(4))
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []Layer{0, 3, 31}, m.Layers())
	assert.True(t, m.Intersects(MaskOf(31)))
	assert.False(t, m.Intersects(MaskOf(1, 2)))
}

func TestLayerNames_Describe(t *testing.T) {
	names := NewLayerNames([]string{"", "", "", "", "", "", "", "", "Props", "Characters"})

	tests := []struct {
		mask Mask
		want string
	}{
		{Nothing, "Nothing"},
		{Everything, "Everything"},
		// Layer 0 is named like any other layer, so a layer-0-only mask never reads as "".
		{MaskOf(0), "Default"},
		{MaskOf(0, 8), "Default, Props"},
		{MaskOf(8, 9), "Props, Characters"},
		{MaskOf(4, 20), "Water, Layer 20"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.Describe(tt.mask))
	}
}
