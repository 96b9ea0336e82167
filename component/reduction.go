package component

import "fmt"

// Reduction joins two cross sections of different size. The loss coefficient
// is resolved over the area ratio, whose orientation depends on the kind:
// A2/A1 for a narrowing, A1/A2 for an extension.
type Reduction struct {
	ConnectorA *Connector
	ConnectorB *Connector
	Kind       ReductionKind
	ZetaValue  float64
}

func NewReduction(connectorA, connectorB *Connector, kind ReductionKind) (*Reduction, error) {
	r := &Reduction{ConnectorA: connectorA, ConnectorB: connectorB, Kind: kind}

	var factor float64
	var table Table
	switch kind {
	case Narrowing:
		factor = connectorB.Area / connectorA.Area
		table = zetaNarrowing
	case Extension:
		factor = connectorA.Area / connectorB.Area
		table = zetaExtension
	default:
		return nil, ErrUnsupportedReductionKind
	}
	r.ZetaValue = table.Nearest(factor)
	return r, nil
}

func (r *Reduction) Type() Type            { return TypeReduction }
func (r *Reduction) Primary() *Connector   { return r.ConnectorA }
func (r *Reduction) Secondary() *Connector { return r.ConnectorB }
func (r *Reduction) Zeta() float64         { return r.ZetaValue }

func (r *Reduction) String() string {
	if r.ConnectorA.Shape == Rectangled {
		return fmt.Sprintf(`%s
    width b: %d [mm], heigth b: %d [mm]
    area b: %.2f [m^2]
    zeta value: %.4f [-]
    shape type: %s`, r.ConnectorA, r.ConnectorB.Width, r.ConnectorB.Height,
			r.ConnectorB.Area, r.ZetaValue, r.Type())
	}
	return fmt.Sprintf(`%s
    diameter b: %d [mm]
    area b: %.2f [m^2]
    zeta value: %.4f [-]
    shape type: %s`, r.ConnectorA, r.ConnectorB.Diameter, r.ConnectorB.Area,
		r.ZetaValue, r.Type())
}
