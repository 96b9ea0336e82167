package thermo

import (
	"fmt"
	"math"

	"airnet/component"
)

// AirDensity at standard conditions. [kg/m³]
const AirDensity = 1.293

// Pressure carries the pressure drop calculation of one component at a
// given volume flow.
type Pressure struct {
	Component    component.Component
	VolumeFlow   float64 // m³/h
	Connector    *component.Connector
	MeanVelocity float64 // m/s
	PressureDrop float64 // Pa
}

// NewPressure resolves the primary connector, derives the mean velocity and
// the pressure drop. Components without a primary connector or with a
// non-positive cross section fail fast.
func NewPressure(c component.Component, volumeFlow float64) (*Pressure, error) {
	connector := c.Primary()
	if connector == nil {
		return nil, component.ErrConnectorNotFound
	}
	if connector.Area <= 0 {
		return nil, component.ErrInvalidGeometry
	}

	p := &Pressure{
		Component:  c,
		VolumeFlow: volumeFlow,
		Connector:  connector,
	}
	p.setMeanVelocity(volumeFlow)
	p.setPressureDrop()
	return p, nil
}

// setMeanVelocity derives the mean velocity in the primary connector from a
// volume flow in m³/h. T-pieces see only half of the incoming flow per
// branch.
func (p *Pressure) setMeanVelocity(volumeFlow float64) {
	if p.Component.Type() == component.TypeTPiece {
		volumeFlow = volumeFlow / 2
	}
	p.MeanVelocity = (volumeFlow / p.Connector.Area) / 3600
}

// setPressureDrop applies the duct friction formula for straight runs and
// the zeta formula for everything else.
func (p *Pressure) setPressureDrop() {
	if duct, ok := p.Component.(*component.Duct); ok {
		var diameter float64
		if p.Connector.Shape == component.Rectangled {
			diameter = math.Sqrt(float64(p.Connector.Width) * float64(p.Connector.Height))
		} else {
			diameter = float64(p.Connector.Diameter)
		}
		p.PressureDrop = duct.LambdaValue * p.Connector.Length / 1_000 / diameter *
			AirDensity / 2 * p.MeanVelocity * p.MeanVelocity
		return
	}
	p.PressureDrop = p.Component.Zeta() * AirDensity / 2 * p.MeanVelocity * p.MeanVelocity
}

func (p *Pressure) String() string {
	return fmt.Sprintf("volume flow: %.2f [m^3/h], mean velocity: %.4f [m/s], pressure drop: %.4f [Pa]",
		p.VolumeFlow, p.MeanVelocity, p.PressureDrop)
}
