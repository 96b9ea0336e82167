package comfort

import (
	"fmt"
	"math"

	"airnet/building"
)

// Activity levels with their contamination loads.
type Activity int

const (
	Sitting Activity = iota + 1
	SittingSmokerLight
	SittingSmokerMedium
	SittingSmokerHeavy
	LowActivity
	MediumActivity
	HighActivity
	Child
)

// contamination load per person. [olf]
var activityLoads = map[Activity]float64{
	Sitting:             1,
	SittingSmokerLight:  2,
	SittingSmokerMedium: 3,
	SittingSmokerHeavy:  6,
	LowActivity:         4,
	MediumActivity:      10,
	HighActivity:        20,
	Child:               1.3,
}

// RoomKind of the evaluated room.
type RoomKind int

const (
	Office RoomKind = iota + 1
	Classroom
	Kindergarten
	MeetingRoom
)

// contamination load per m² floor area. [olf/m²]
var roomLoads = map[RoomKind]float64{
	Office:       0.3,
	Classroom:    0.3,
	Kindergarten: 0.4,
	MeetingRoom:  0.5,
}

// ThermalComfort evaluates the predicted mean vote and the predicted
// percentage of dissatisfied for one air condition. Relative humidity is
// noted from 0 to 1, PPD from 0 to 100.
type ThermalComfort struct {
	AirTemp         float64 // °C
	MeanRadiantTemp float64 // °C
	AirVelocity     float64 // m/s
	RelHumidity     float64
	Clothing        float64 // clo
	MetabolicWork   float64 // W/m²
	ExternalWork    float64 // W/m²

	WaterVapourPressure float64 // Pa
	PMV                 float64
	PPD                 float64 // %
}

// NewThermalComfort evaluates the comfort indices with the default 0.7 clo
// clothing and 70 W/m² metabolic rate. Adjust the fields and call Evaluate
// again for other occupancies.
func NewThermalComfort(airTemp, meanRadiantTemp, airVelocity, relHumidity float64) *ThermalComfort {
	t := &ThermalComfort{
		AirTemp:         airTemp,
		MeanRadiantTemp: meanRadiantTemp,
		AirVelocity:     airVelocity,
		RelHumidity:     relHumidity,
		Clothing:        0.7,
		MetabolicWork:   70,
	}
	t.Evaluate()
	return t
}

// Evaluate recomputes water vapour pressure, PMV and PPD from the current
// fields.
func (t *ThermalComfort) Evaluate() {
	t.WaterVapourPressure = t.waterVapourPressure()
	t.PMV = t.pmv()
	t.PPD = PPD(t.PMV)
}

func (t *ThermalComfort) String() string {
	return fmt.Sprintf(`-----------------------------------------------------------------------
Predicted Mean Vote (PMV): %v
Predicted Percent of Dissatisfied (PPD): %v`, t.PMV, t.PPD)
}

// waterVapourPressure in the air from temperature and relative humidity.
// [Pa]
func (t *ThermalComfort) waterVapourPressure() float64 {
	return t.RelHumidity * math.Exp(16.6536-4030.183/((t.AirTemp+273.15)+235))
}

// surfaceTempClothing iterates the clothing surface temperature until the
// heat balance between convection and radiation settles.
func (t *ThermalComfort) surfaceTempClothing(insClothing, clothingFactor, internalHeatBody, radiantTempKelvin float64) (surfaceTemp, offsetFactor, heatCoeff float64) {
	airSpeed := math.Max(t.AirVelocity, 0.1)
	heatCoeff = 12.1 * math.Sqrt(airSpeed)
	airTempKelvin := t.AirTemp + 273.15

	surfaceTemp = airTempKelvin + (35.5-t.AirTemp)/(3.5*(6.45*(insClothing+0.1)))

	clothingArea := insClothing * clothingFactor
	radiationTerm := clothingArea * 3.96
	convectionTerm := clothingArea * 100
	airTerm := clothingArea * airTempKelvin
	balance := 308.7 - 0.028*internalHeatBody +
		radiationTerm*math.Pow(radiantTempKelvin/100, 4)

	factorNew := surfaceTemp / 100
	factorStored := factorNew
	const delta = 0.00015

	for {
		factorStored = (factorStored + factorNew) / 2
		convection := 2.38 * math.Pow(math.Abs(100*factorStored-airTempKelvin), 0.25)
		if convection > heatCoeff {
			heatCoeff = convection
		}
		factorNew = (balance + airTerm*heatCoeff - radiationTerm*math.Pow(factorStored, 4)) /
			(100 + convectionTerm*heatCoeff)

		if math.Abs(factorNew-factorStored) <= delta {
			break
		}
	}

	return 100*factorNew - 273.15, factorNew, heatCoeff
}

func (t *ThermalComfort) pmv() float64 {
	insClothing := 0.155 * t.Clothing
	internalHeatBody := t.MetabolicWork - t.ExternalWork
	clothingFactor := 1.05 + 0.645*insClothing
	radiantTempKelvin := t.MeanRadiantTemp + 273.15

	surfaceTemp, offsetFactor, heatCoeff := t.surfaceTempClothing(
		insClothing, clothingFactor, internalHeatBody, radiantTempKelvin)

	lossSkin := 3.05 * 0.001 * (5733 - 6.99 - internalHeatBody)
	var lossSweating float64
	if internalHeatBody > 58.15 {
		lossSweating = 0.42 * (internalHeatBody - 58.15)
	}
	lossLatentRespiration := 1.7 * 0.00001 * t.MetabolicWork * (5867 - t.WaterVapourPressure)
	lossDryRespiration := 0.0014 * t.MetabolicWork * (34 - t.AirTemp)
	lossRadiation := 3.96 * clothingFactor *
		(math.Pow(offsetFactor, 4) - math.Pow(radiantTempKelvin/100, 4))
	lossConvection := clothingFactor * heatCoeff * (surfaceTemp - t.AirTemp)

	thermalSensation := 0.303*math.Exp(-0.036*t.MetabolicWork) + 0.028
	return thermalSensation * (internalHeatBody - lossSkin - lossSweating -
		lossLatentRespiration - lossDryRespiration - lossRadiation - lossConvection)
}

// PPD is the predicted percentage of dissatisfied for a predicted mean
// vote. [%]
func PPD(pmv float64) float64 {
	return 100 - 95*math.Exp(-0.03353*math.Pow(pmv, 4)-0.2179*pmv*pmv)
}

// AirQualityComfort evaluates the perceived air quality of one room.
type AirQualityComfort struct {
	Activities map[Activity]float64
	RoomKind   RoomKind
	Room       *building.Room
}

// UserContaminationLoad of the occupants. [olf]
func (a *AirQualityComfort) UserContaminationLoad() float64 {
	var load float64
	for activity, count := range a.Activities {
		load += count * activityLoads[activity]
	}
	return load
}

// RoomContaminationLoad of the floor area. [olf]
func (a *AirQualityComfort) RoomContaminationLoad() float64 {
	return a.Room.Area * roomLoads[a.RoomKind]
}

// PerceivedAirQuality for the contamination loads at a volume flow in m³/h.
// [dezipol]
func PerceivedAirQuality(userContamination, roomContamination, volumeFlow float64) float64 {
	return 10 * (userContamination + roomContamination) / volumeFlow
}

// PercentageDissatisfied with a perceived air quality. [%]
func PercentageDissatisfied(perceivedAirQuality float64) float64 {
	return 395 * math.Exp(-3.25*math.Pow(perceivedAirQuality, -0.25))
}
