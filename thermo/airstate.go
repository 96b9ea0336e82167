package thermo

import (
	"fmt"
	"time"
)

// Density of dry air at standard pressure for a temperature in °C. [kg/m³]
func Density(temperature float64) float64 {
	const standardPressure = 101_325 // Pa
	const rs = 287.058               // J/kgK
	return standardPressure / (rs * (temperature + 273.15))
}

// MassFlux converts a volume flow in m³/s into a mass flux. [kg/s]
func MassFlux(volumeFlow, density float64) float64 {
	return volumeFlow * density
}

// AirState is one air condition sample handed between the duct network and
// the air handling unit.
type AirState struct {
	Timestamp    time.Time
	Temperature  float64 // °C
	VolumeFlow   float64 // m³/s
	PressureDrop float64 // Pa
	Density      float64 // kg/m³
	MassFlux     float64 // kg/s
}

// NewAirState derives density and mass flux from temperature and volume
// flow.
func NewAirState(timestamp time.Time, temperature, volumeFlow, pressureDrop float64) AirState {
	density := Density(temperature)
	return AirState{
		Timestamp:    timestamp,
		Temperature:  temperature,
		VolumeFlow:   volumeFlow,
		PressureDrop: pressureDrop,
		Density:      density,
		MassFlux:     MassFlux(volumeFlow, density),
	}
}

func (a AirState) String() string {
	return fmt.Sprintf("volume_flow: %.4f [m^3/s], temperature: %.2f [deg C], density: %.4f [m^3/kg]",
		a.VolumeFlow, a.Temperature, a.Density)
}
