package component

import "fmt"

// Airterminal is a passive outlet. No loss is modelled here, the zeta value
// stays at zero; its volume flow is assigned externally on the network node.
type Airterminal struct {
	Connector *Connector
	ZetaValue float64
}

func NewAirterminal(connector *Connector) *Airterminal {
	return &Airterminal{Connector: connector}
}

func (a *Airterminal) Type() Type            { return TypeAirterminal }
func (a *Airterminal) Primary() *Connector   { return a.Connector }
func (a *Airterminal) Secondary() *Connector { return nil }
func (a *Airterminal) Zeta() float64         { return a.ZetaValue }

func (a *Airterminal) String() string {
	return fmt.Sprintf(`%s
    shape type: %s`, a.Connector, a.Type())
}
