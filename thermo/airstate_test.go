package thermo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDensity(t *testing.T) {
	assert.InDelta(t, 1.2041, Density(20), 1e-4)
	assert.InDelta(t, 1.2922, Density(0), 1e-4)
}

func TestAirState(t *testing.T) {
	state := NewAirState(time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), 20, 0.5, 67.5)
	assert.InDelta(t, Density(20), state.Density, 1e-12)
	assert.InDelta(t, 0.5*Density(20), state.MassFlux, 1e-12)
	assert.Equal(t, 67.5, state.PressureDrop)
}
