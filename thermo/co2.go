package thermo

import "math"

// MetabolicRate levels of occupant activity.
type MetabolicRate int

const (
	Base MetabolicRate = iota + 1
	RelaxedSitting
	LightSedentary
	LightStanding
	StandingModerateActivity
)

// met factors per activity level.
var metPerPerson = map[MetabolicRate]float64{
	Base:                     0.8,
	RelaxedSitting:           1.0,
	LightSedentary:           1.2,
	LightStanding:            1.6,
	StandingModerateActivity: 2.0,
}

// CO2 generation per person. [l/h]
const (
	co2Adult = 17
	co2Child = 10
)

// CarbonDioxide tracks the CO2 level of a room.
type CarbonDioxide struct {
	OutdoorCO2 float64 // ppm
	RoomCO2    float64 // ppm
	RoomVolume float64 // m³
}

// NewCarbonDioxide starts both concentrations at the 450 ppm outdoor level
// and a 1 m³ placeholder volume.
func NewCarbonDioxide() *CarbonDioxide {
	return &CarbonDioxide{OutdoorCO2: 450, RoomCO2: 450, RoomVolume: 1}
}

// CO2Persons is the generated CO2 of the occupants at an activity level.
// [m³/h]
func CO2Persons(personsAdult, personsChild float64, activity MetabolicRate) float64 {
	met := metPerPerson[activity]
	return met*personsAdult*co2Adult + met*personsChild*co2Child
}

// SetRoomVolume derives the room volume from area in m² and height in m.
func (c *CarbonDioxide) SetRoomVolume(area, height float64) {
	c.RoomVolume = area * height
}

// Concentration advances the room CO2 level for an incoming air flow in
// m³/h and the generated CO2 of the occupants, and returns the new level.
// [ppm]
func (c *CarbonDioxide) Concentration(flowIn, co2Generated float64) float64 {
	flow := flowIn / 3600 // m³/s
	ach := flow / c.RoomVolume
	c.RoomCO2 = c.RoomCO2 + co2Generated - (c.OutdoorCO2*flow)*math.Exp(-ach)
	return c.RoomCO2
}
