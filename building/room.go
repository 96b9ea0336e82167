package building

import (
	"fmt"

	"airnet/component"
)

// Room holds the properties of one conditioned room. It terminates a duct
// run, so it also satisfies component.Component with no loss of its own.
type Room struct {
	Number     string
	Connector  *component.Connector
	Persons    int
	Area       float64 // m²
	Height     float64 // m
	VolumeFlow float64 // m³/h
}

// NewRoom builds a room with the default 1 m² area and 2.5 m clear height.
func NewRoom(number string, connector *component.Connector, persons int) *Room {
	return &Room{
		Number:    number,
		Connector: connector,
		Persons:   persons,
		Area:      1,
		Height:    2.5,
	}
}

// SetArea assigns the floor area from length and width in metres.
func (r *Room) SetArea(length, width float64) {
	r.Area = length * width
}

// Volume is the room air volume. [m³]
func (r *Room) Volume() float64 {
	return r.Area * r.Height
}

// SetVolumeFlow assigns the design volume flow from a room volume in m³ and
// an air change rate in 1/h.
func (r *Room) SetVolumeFlow(roomVolume, airChangeRate float64) {
	r.VolumeFlow = roomVolume * airChangeRate
}

func (r *Room) Type() component.Type            { return component.TypeRoom }
func (r *Room) Primary() *component.Connector   { return r.Connector }
func (r *Room) Secondary() *component.Connector { return nil }
func (r *Room) Zeta() float64                   { return 0 }

func (r *Room) String() string {
	return fmt.Sprintf(`%s
    room number: %s
    area: %.2f [m^2], height: %.2f [m]
    persons: %d
    volume flow: %.2f [m^3/h]`, r.Connector, r.Number, r.Area, r.Height,
		r.Persons, r.VolumeFlow)
}

// Building holds the rooms and sums their properties.
type Building struct {
	Name         string
	Rooms        []*Room
	Area         float64 // m²
	Volume       float64 // m³
	Persons      int
	AirFlowTotal float64 // m³/h
}

// NewBuilding sums the room properties once at construction. Call Refresh
// after mutating a room.
func NewBuilding(name string, rooms []*Room) *Building {
	b := &Building{Name: name, Rooms: rooms}
	b.Refresh()
	return b
}

// Refresh recomputes the building sums from the current room state.
func (b *Building) Refresh() {
	b.Area = 0
	b.Volume = 0
	b.Persons = 0
	b.AirFlowTotal = 0
	for _, room := range b.Rooms {
		b.Area += room.Area
		b.Volume += room.Volume()
		b.Persons += room.Persons
		b.AirFlowTotal += room.VolumeFlow
	}
}
