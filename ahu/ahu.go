package ahu

import "errors"

// RegisterKind selects heating or cooling behaviour of a register.
type RegisterKind int

const (
	Cooling RegisterKind = iota + 1
	Heating
)

// RecoveryKind of the heat recovery unit.
type RecoveryKind int

const (
	Rotary RecoveryKind = iota + 1
	Plate
	CompoundSystem
)

var ErrUnsupportedRegisterKind = errors.New("ahu: unsupported register kind")

const (
	specHeatCapacity = 1_006 // J/kgK
	densityAir       = 1.204 // kg/m³
)

// ConvertToM3S converts a volume flow from m³/h to m³/s.
func ConvertToM3S(volumeFlow float64) float64 { return volumeFlow / 3600 }

// ConvertToM3H converts a volume flow from m³/s to m³/h.
func ConvertToM3H(volumeFlow float64) float64 { return volumeFlow * 3600 }

// sfpClasses maps specific fan power breakpoints in W/(m³/s) onto the SFP
// class, class 7 covers everything above 4500.
var sfpClasses = []struct {
	SpecificPower float64
	Class         int
}{
	{300, 0},
	{500, 1},
	{750, 2},
	{1_250, 3},
	{2_000, 4},
	{3_000, 5},
	{4_500, 6},
	{4_501, 7},
}

// powerPerClass is the nominal specific power assumed for each SFP class
// when estimating the current power draw.
var powerPerClass = map[int]float64{
	0: 300,
	1: 500,
	2: 750,
	3: 1_250,
	4: 2_000,
	5: 3_000,
	6: 4_500,
	7: 6_000,
}

// Fan holds the nominal operating point of one fan and the derived SFP
// class and motor efficiency.
type Fan struct {
	VolumeFlowNominal      float64 // m³/s
	ElectricalPowerNominal float64 // W
	SFPClass               int
	Efficiency             float64
}

// NewFan classifies a fan from its nominal volume flow in m³/h and nominal
// electrical power in W.
func NewFan(volumeFlowNominal, electricalPowerNominal float64) *Fan {
	f := &Fan{
		VolumeFlowNominal:      ConvertToM3S(volumeFlowNominal),
		ElectricalPowerNominal: electricalPowerNominal,
	}
	f.SFPClass = f.classify()
	return f
}

// classify picks the SFP class with the nearest specific power breakpoint
// and derives the motor efficiency, capped at 1.
func (f *Fan) classify() int {
	specificPower := f.ElectricalPowerNominal / f.VolumeFlowNominal

	best := sfpClasses[0]
	bestDistance := abs(best.SpecificPower - specificPower)
	for _, candidate := range sfpClasses[1:] {
		if d := abs(candidate.SpecificPower - specificPower); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	f.Efficiency = (f.VolumeFlowNominal / f.ElectricalPowerNominal) * 1_000
	if f.Efficiency > 1 {
		f.Efficiency = 1
	}
	return best.Class
}

// CurrentPower estimates the electrical power at a volume flow in m³/h as
// the mean of the SFP class estimate and the efficiency estimate. [W]
func (f *Fan) CurrentPower(volumeFlow float64) float64 {
	flow := ConvertToM3S(volumeFlow)
	powerMains := flow * powerPerClass[f.SFPClass]
	powerEff := (flow / f.Efficiency) * 1_000
	return (powerMains + powerEff) / 2
}

// Register is a heating or cooling coil.
type Register struct {
	Kind     RegisterKind
	MaxPower float64 // W
}

// CurrentPower derives the coil power from the supply air temperatures
// around it, volume flow in m³/h. [W]
func (r *Register) CurrentPower(volumeFlow, tempIn, tempOut float64) (float64, error) {
	flow := ConvertToM3S(volumeFlow)
	switch r.Kind {
	case Cooling:
		return flow * densityAir * specHeatCapacity * (tempIn - tempOut), nil
	case Heating:
		return flow * densityAir * specHeatCapacity * (tempOut - tempIn), nil
	}
	return 0, ErrUnsupportedRegisterKind
}

// OutTemperature derives the supply air temperature after the coil from the
// coil power, volume flow in m³/h. [°C]
func (r *Register) OutTemperature(volumeFlow, tempIn, power float64) (float64, error) {
	flow := ConvertToM3S(volumeFlow)
	delta := power / (flow * densityAir * specHeatCapacity)
	switch r.Kind {
	case Cooling:
		return tempIn - delta, nil
	case Heating:
		return tempIn + delta, nil
	}
	return 0, ErrUnsupportedRegisterKind
}

// HeatRecovery exchanges heat between return air and outside air. The
// exchanger coefficient follows from the nominal temperatures.
type HeatRecovery struct {
	Kind        RecoveryKind
	Coefficient float64
}

// NewHeatRecovery derives the exchanger coefficient from the nominal
// outside, supply and return air temperatures.
func NewHeatRecovery(kind RecoveryKind, tempOA, tempSA, tempRA float64) *HeatRecovery {
	return &HeatRecovery{
		Kind:        kind,
		Coefficient: (tempSA - tempOA) / (tempRA - tempOA),
	}
}

// SupplyTemperature after the exchanger for the current return and outside
// air temperatures. [°C]
func (h *HeatRecovery) SupplyTemperature(tempRA, tempOA float64) float64 {
	return h.Coefficient*(tempRA-tempOA) + tempOA
}

// CurrentPower of the exchanger at a volume flow in m³/h. [W]
func (h *HeatRecovery) CurrentPower(volumeFlow, tempOA, tempSA float64) float64 {
	flow := ConvertToM3S(volumeFlow)
	return flow * densityAir * specHeatCapacity * (tempSA - tempOA)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
