package component

import (
	"errors"
	"fmt"
	"math"
)

// Form of a connector cross section.
type Form int

const (
	Rectangled Form = iota + 1
	Circled
)

func (f Form) String() string {
	switch f {
	case Rectangled:
		return "RECTANGLED"
	case Circled:
		return "CIRCLED"
	}
	return "UNKNOWN"
}

// Type of a duct-network component.
type Type int

const (
	TypeDuct Type = iota + 1
	TypeBow
	TypeReduction
	TypeTPiece
	TypeAirterminal
	TypeRoom
	TypeFlap
	TypeFan
)

func (t Type) String() string {
	switch t {
	case TypeDuct:
		return "DUCT"
	case TypeBow:
		return "BOW"
	case TypeReduction:
		return "REDUCTION"
	case TypeTPiece:
		return "TPIECE"
	case TypeAirterminal:
		return "AIRTERMINAL"
	case TypeRoom:
		return "ROOM"
	case TypeFlap:
		return "FLAP"
	case TypeFan:
		return "FAN"
	}
	return "UNKNOWN"
}

// Orientation of the component in the building.
type Orientation int

const (
	Vertical Orientation = iota + 1
	Horizontal
)

// AirType carries the German system codes used by the source documents.
// EA exhaust air "FOL", OA outside air "AUL", SA supply air "ZUL",
// RA return air "ABL".
type AirType string

const (
	EA AirType = "FOL"
	OA AirType = "AUL"
	SA AirType = "ZUL"
	RA AirType = "ABL"
)

// ReductionKind distinguishes a narrowing from an extending fitting.
type ReductionKind int

const (
	Narrowing ReductionKind = iota + 1
	Extension
)

var (
	ErrUnsupportedShape         = errors.New("component: unsupported connector shape")
	ErrUnsupportedReductionKind = errors.New("component: unsupported reduction kind")
	ErrConnectorNotFound        = errors.New("component: connector not found")
	ErrInvalidGeometry          = errors.New("component: connector area must be positive")
)

// General is the topological identity shared by all connectors. Ports are
// node ids in the network graph, not ownership references.
type General struct {
	ID          string
	Orientation Orientation
	AirType     AirType
	PortA       string
	PortB       string
}

func (g General) String() string {
	return fmt.Sprintf(`-----------------------------------------------------------------------
id: %s
Port A: %s, Port B: %s`, g.ID, g.PortA, g.PortB)
}

// Connector describes one cross section of a component. The area is derived
// once at construction, dimensions are millimetres, area is m².
type Connector struct {
	General  General
	Shape    Form
	Length   float64 // mm
	Diameter int     // mm, circled only
	Width    int     // mm, rectangled only
	Height   int     // mm, rectangled only
	Area     float64 // m²
}

// NewCircled builds a circular connector and derives its area.
func NewCircled(general General, diameter int, length float64) *Connector {
	d := float64(diameter)
	return &Connector{
		General:  general,
		Shape:    Circled,
		Length:   length,
		Diameter: diameter,
		Area:     (d / 2) * (d / 2) * math.Pi / 1_000_000,
	}
}

// NewRectangled builds a rectangular connector and derives its area.
func NewRectangled(general General, width, height int, length float64) *Connector {
	return &Connector{
		General: general,
		Shape:   Rectangled,
		Length:  length,
		Width:   width,
		Height:  height,
		Area:    float64(width) * float64(height) / 1_000_000,
	}
}

func (c *Connector) String() string {
	if c.Shape == Circled {
		return fmt.Sprintf(`%s
    shape form: %s
    length: %.0f [mm],
    diameter: %d [mm]
    area: %.2f [m^2]`, c.General, c.Shape, c.Length, c.Diameter, c.Area)
	}
	return fmt.Sprintf(`%s
    shape form: %s
    length: %.0f [mm]
    width a: %d [mm], heigth a: %d [mm]
    area: %.2f [m^2]`, c.General, c.Shape, c.Length, c.Width, c.Height, c.Area)
}

// Component is the uniform view over every duct-network element. Primary
// returns the connector velocities and pressure drops are computed on,
// Secondary returns the second connector of two-connector fittings and nil
// for everything else.
type Component interface {
	Type() Type
	Primary() *Connector
	Secondary() *Connector
	// Zeta returns the local loss coefficient. Ducts report 0, their loss
	// comes from the friction factor instead.
	Zeta() float64
}

func radians(degree float64) float64 {
	return degree * math.Pi / 180
}
