package component

import (
	"fmt"
	"math"
)

// Viscosity is the kinematic viscosity of air. [mm²/s]
const Viscosity = 13.3

// Duct is a straight run. Its loss is driven by the friction factor
// (lambda) instead of a zeta coefficient.
type Duct struct {
	Connector    *Connector
	MeanVelocity float64 // m/s
	LambdaValue  float64
}

// NewDuct derives the friction factor from the mean velocity and the
// characteristic diameter of the connector.
func NewDuct(connector *Connector, meanVelocity float64) (*Duct, error) {
	d := &Duct{Connector: connector, MeanVelocity: meanVelocity}
	diameter, err := d.characteristicDiameter()
	if err != nil {
		return nil, err
	}
	d.SetLambda(Reynolds(meanVelocity, diameter))
	return d, nil
}

// characteristicDiameter returns the diameter the Reynolds number is built
// on, in mm. The rectangular branch keeps the source formula 4·w²/(2w+2w),
// which reduces to the width and never sees the height; see DESIGN.md.
func (d *Duct) characteristicDiameter() (float64, error) {
	switch d.Connector.Shape {
	case Rectangled:
		aFactor := float64(d.Connector.Width) * float64(d.Connector.Width)
		pFactor := float64(2*d.Connector.Width + 2*d.Connector.Width)
		return 4 * aFactor / pFactor, nil
	case Circled:
		return float64(d.Connector.Diameter), nil
	}
	return 0, ErrUnsupportedShape
}

// Reynolds calculates the Reynolds number from a mean velocity in m/s and a
// characteristic diameter in mm.
func Reynolds(meanVelocity, diameter float64) float64 {
	return meanVelocity * diameter / Viscosity
}

// SetLambda derives the friction factor from a Reynolds number. It may be
// called again at any time with an updated Reynolds number. The branch
// assignment reproduces the source tables as published; see DESIGN.md.
func (d *Duct) SetLambda(reynolds float64) {
	if reynolds < 2300 {
		d.LambdaValue = 0.3164 / math.Pow(reynolds, 0.25)
	} else {
		d.LambdaValue = 64 / reynolds
	}
}

func (d *Duct) Type() Type            { return TypeDuct }
func (d *Duct) Primary() *Connector   { return d.Connector }
func (d *Duct) Secondary() *Connector { return nil }
func (d *Duct) Zeta() float64         { return 0 }

func (d *Duct) String() string {
	return fmt.Sprintf(`%s
    mean velocity: %.4f [m/s]
    lambda value: %.4f [-]
    shape type: %s`, d.Connector, d.MeanVelocity, d.LambdaValue, d.Type())
}
