package mazesolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, East|South, (West | North).Opposite())

	for _, d := range AllDirections {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox)
		assert.Equal(t, 0, dy+oy)
	}
}

func TestDirectionHas(t *testing.T) {
	open := North | East
	assert.True(t, open.Has(North))
	assert.True(t, open.Has(North|East))
	assert.False(t, open.Has(South))
	assert.False(t, open.Has(North|South))
	assert.False(t, open.Has(0))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "none", Direction(0).String())
	assert.Equal(t, "north|west", (North | West).String())
	assert.Equal(t, "(3, 4)", Point{X: 3, Y: 4}.String())
}
