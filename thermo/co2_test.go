package thermo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCO2Persons(t *testing.T) {
	assert.InDelta(t, 61.2, CO2Persons(3, 0, LightSedentary), 1e-12)
	assert.InDelta(t, 1*0.8*17+2*0.8*10, CO2Persons(1, 2, Base), 1e-12)
}

func TestConcentration(t *testing.T) {
	co2 := NewCarbonDioxide()
	co2.RoomCO2 = 600
	co2.SetRoomVolume(50, 2.6)

	generated := CO2Persons(3, 0, LightSedentary)
	got := co2.Concentration(500, generated)
	assert.InDelta(t, 598.7667, got, 1e-3)
	assert.Equal(t, got, co2.RoomCO2)
}

func TestConcentrationDefaults(t *testing.T) {
	co2 := NewCarbonDioxide()
	assert.Equal(t, 450.0, co2.OutdoorCO2)
	assert.Equal(t, 450.0, co2.RoomCO2)
	assert.Equal(t, 1.0, co2.RoomVolume)
}
