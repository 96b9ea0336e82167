package component

import "fmt"

// Flap is a volume flow controller. Its blade angle follows the current
// volume flow, so its pressure drop has to be recomputed on every traversal
// instead of being memoized.
type Flap struct {
	Connector  *Connector
	AlphaAngle float64 // degree
}

func NewFlap(connector *Connector) *Flap {
	return &Flap{Connector: connector}
}

// AdjustAngle maps a volume flow in m³/h onto the blade angle of the
// measured flap characteristic, stores and returns it. [degree]
func (f *Flap) AdjustAngle(volumeFlow float64) float64 {
	flow := volumeFlow / 3600 // m³/s
	f.AlphaAngle = -634.6*flow + 92.88
	return f.AlphaAngle
}

// PressureDrop of the flap is a pure function of the blade angle. [Pa]
func (f *Flap) PressureDrop(alphaAngle float64) float64 {
	return 1.112*alphaAngle + 109.9
}

func (f *Flap) Type() Type            { return TypeFlap }
func (f *Flap) Primary() *Connector   { return f.Connector }
func (f *Flap) Secondary() *Connector { return nil }
func (f *Flap) Zeta() float64         { return 0 }

func (f *Flap) String() string {
	return fmt.Sprintf(`%s
    shape type: %s`, f.Connector, f.Type())
}
