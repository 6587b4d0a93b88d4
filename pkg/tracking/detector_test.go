package tracking

import (
	"testing"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Classify(t *testing.T) {
	tests := []struct {
		name     string
		mirrored bool
		x        float64
		want     types.Side
	}{
		{name: "mirrored left edge of frame", mirrored: true, x: -0.9, want: types.SideRight},
		{name: "mirrored right edge of frame", mirrored: true, x: 0.9, want: types.SideLeft},
		{name: "mirrored center", mirrored: true, x: 0.1, want: types.SideNone},
		{name: "left edge of frame", mirrored: false, x: -0.9, want: types.SideLeft},
		{name: "right edge of frame", mirrored: false, x: 0.9, want: types.SideRight},
		{name: "center", mirrored: false, x: -0.2, want: types.SideNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(0.2, tt.mirrored)
			assert.Equal(t, tt.want, d.Classify(tt.x))
		})
	}
}

func TestDetector_ObserveAndConfirm(t *testing.T) {
	d := NewDetector(0.2, true)

	c, ok := d.Observe(true, 0.9, true)
	require.True(t, ok)
	assert.Equal(t, types.SideLeft, c.Side)

	// holding the same side does not produce another candidate
	_, ok = d.Observe(true, 0.95, true)
	assert.False(t, ok)

	assert.True(t, d.Confirm(c))
}

func TestDetector_WobbleCancelsCandidate(t *testing.T) {
	d := NewDetector(0.2, true)

	first, ok := d.Observe(true, 0.9, true)
	require.True(t, ok)

	// back to neutral before the confirmation delay
	_, ok = d.Observe(true, 0, true)
	assert.False(t, ok)
	assert.Equal(t, types.SideNone, d.LastSide())
	assert.False(t, d.Confirm(first))

	// the same side counts again after passing through neutral
	second, ok := d.Observe(true, 0.9, true)
	require.True(t, ok)
	assert.False(t, d.Confirm(first))
	assert.True(t, d.Confirm(second))
}

func TestDetector_SwitchSides(t *testing.T) {
	d := NewDetector(0.2, true)

	left, ok := d.Observe(true, 0.9, true)
	require.True(t, ok)
	right, ok := d.Observe(true, -0.9, true)
	require.True(t, ok)

	assert.Equal(t, types.SideRight, right.Side)
	assert.False(t, d.Confirm(left))
	assert.True(t, d.Confirm(right))
}

func TestDetector_NotAccepting(t *testing.T) {
	d := NewDetector(0.2, true)

	_, ok := d.Observe(true, 0.9, false)
	assert.False(t, ok)
	assert.Equal(t, types.SideNone, d.LastSide())

	// once input is accepted again the held side is picked up
	c, ok := d.Observe(true, 0.9, true)
	require.True(t, ok)
	assert.Equal(t, types.SideLeft, c.Side)
}

func TestDetector_AnchorLost(t *testing.T) {
	d := NewDetector(0.2, true)

	c, ok := d.Observe(true, -0.9, true)
	require.True(t, ok)

	_, ok = d.Observe(false, 0, true)
	assert.False(t, ok)
	assert.Equal(t, types.SideNone, d.LastSide())
	assert.False(t, d.Confirm(c))
}
