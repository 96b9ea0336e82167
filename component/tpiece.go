package component

import "fmt"

// TPiece branches one upstream run into two downstream runs. The loss
// coefficient is resolved over the v1/v flow fraction derived from the two
// connector areas.
type TPiece struct {
	ConnectorA *Connector
	ConnectorB *Connector
	ZetaValue  float64
}

func NewTPiece(connectorA, connectorB *Connector) *TPiece {
	t := &TPiece{ConnectorA: connectorA, ConnectorB: connectorB}
	t.ZetaValue = zetaTPiece.Nearest(t.factorV1V())
	return t
}

// factorV1V is the area share of connector a in the total branch area.
func (t *TPiece) factorV1V() float64 {
	return t.ConnectorA.Area / (t.ConnectorA.Area + t.ConnectorB.Area)
}

func (t *TPiece) Type() Type            { return TypeTPiece }
func (t *TPiece) Primary() *Connector   { return t.ConnectorA }
func (t *TPiece) Secondary() *Connector { return t.ConnectorB }
func (t *TPiece) Zeta() float64         { return t.ZetaValue }

func (t *TPiece) String() string {
	if t.ConnectorA.Shape == Rectangled {
		return fmt.Sprintf(`%s
    width b: %d [mm], heigth b: %d [mm]
    area b: %.2f [m^2]
    width c: %d [mm], heigth c: %d [mm]
    area c: %.2f [m^2]
    zeta value: %.4f [-]
    shape type: %s`, t.ConnectorA, t.ConnectorA.Width, t.ConnectorA.Height,
			t.ConnectorA.Area, t.ConnectorB.Width, t.ConnectorB.Height,
			t.ConnectorB.Area, t.ZetaValue, t.Type())
	}
	return fmt.Sprintf(`%s
    diameter b: %d [mm]
    area b: %.2f [m^2]
    diameter c: %d [mm]
    area c: %.2f [m^2]
    zeta value: %.4f [-]
    shape type: %s`, t.ConnectorA, t.ConnectorA.Diameter, t.ConnectorA.Area,
		t.ConnectorB.Diameter, t.ConnectorB.Area, t.ZetaValue, t.Type())
}
