package component

import (
	"fmt"
	"math"
)

// Bow is a bend. Construction derives the geometric bend length from the
// deflection angle and overwrites the connector length with it, then
// resolves the loss coefficient over the r/d factor.
type Bow struct {
	Connector *Connector
	Angle     float64 // degree
	HalfAngle float64 // rad
	ZetaValue float64
}

func NewBow(connector *Connector, angle float64) (*Bow, error) {
	b := &Bow{
		Connector: connector,
		Angle:     angle,
		HalfAngle: radians(angle / 2),
	}

	dimension, err := b.characteristicDimension()
	if err != nil {
		return nil, err
	}
	connector.Length = math.Round(math.Tan(b.HalfAngle) * dimension)

	factor := b.factorRD(dimension)
	switch connector.Shape {
	case Rectangled:
		b.ZetaValue = zetaRectangleBow.Nearest(factor)
	case Circled:
		b.ZetaValue = zetaRoundBow.Nearest(factor)
	default:
		return nil, ErrUnsupportedShape
	}
	return b, nil
}

// characteristicDimension is the cross-section dimension the bend radius
// relates to: width for horizontal rectangular, height for vertical
// rectangular, diameter for circular connectors. [mm]
func (b *Bow) characteristicDimension() (float64, error) {
	switch {
	case b.Connector.Shape == Rectangled && b.Connector.General.Orientation == Horizontal:
		return float64(b.Connector.Width), nil
	case b.Connector.Shape == Rectangled && b.Connector.General.Orientation == Vertical:
		return float64(b.Connector.Height), nil
	case b.Connector.Shape == Circled:
		return float64(b.Connector.Diameter), nil
	}
	return 0, ErrUnsupportedShape
}

// factorRD is the bend radius over the characteristic dimension, the key of
// the bow loss tables.
func (b *Bow) factorRD(dimension float64) float64 {
	radius := b.Connector.Length*math.Cos(b.HalfAngle) + dimension*math.Sin(b.HalfAngle)
	return radius / dimension
}

func (b *Bow) Type() Type            { return TypeBow }
func (b *Bow) Primary() *Connector   { return b.Connector }
func (b *Bow) Secondary() *Connector { return nil }
func (b *Bow) Zeta() float64         { return b.ZetaValue }

func (b *Bow) String() string {
	return fmt.Sprintf(`%s
    angle: %.0f [degree], angle radiant: %.4f [rad]
    zeta value: %.4f [-]
    shape type: %s`, b.Connector, b.Angle, b.HalfAngle, b.ZetaValue, b.Type())
}
