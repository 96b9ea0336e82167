package network

import (
	"airnet/building"
	"airnet/component"
	"airnet/thermo"
)

// Direction selects the child slot of a node.
type Direction int

const (
	Left Direction = iota + 1
	Right
)

// Node maps one component into the network tree. Volume flow and pressure
// drop are filled during traversal; air terminal nodes carry their design
// volume flow as a preset instead.
type Node struct {
	Component    component.Component
	VolumeFlow   float64 // m³/h
	PressureDrop float64 // Pa
	Left         *Node
	Right        *Node

	dropComputed bool
}

func NewNode(c component.Component) *Node {
	return &Node{Component: c}
}

// Add hangs a child node into the selected slot and returns it.
func (n *Node) Add(direction Direction, child *Node) *Node {
	if direction == Right {
		n.Right = child
	} else {
		n.Left = child
	}
	return child
}

// Invalidate clears the computed state of this node and every node below
// it. Air terminal presets are cleared as well, reapply them before the
// next traversal.
func (n *Node) Invalidate() {
	if n == nil {
		return
	}
	n.VolumeFlow = 0
	n.PressureDrop = 0
	n.dropComputed = false
	n.Left.Invalidate()
	n.Right.Invalidate()
}

// Traverse walks the subtree in postorder and returns the total volume flow
// and the accumulated pressure drop. Pressure drops are computed once per
// node and reused on repeated traversals; flap drops follow the current
// flow and are recomputed every time.
func (n *Node) Traverse() (volumeFlow, pressureDrop float64, err error) {
	var leftFlow, leftDrop, rightFlow, rightDrop float64
	if n.Left != nil {
		leftFlow, leftDrop, err = n.Left.Traverse()
		if err != nil {
			return 0, 0, err
		}
	}
	if n.Right != nil {
		rightFlow, rightDrop, err = n.Right.Traverse()
		if err != nil {
			return 0, 0, err
		}
	}

	// rooms are leaves, they feed their design flow upstream and add no
	// loss of their own
	if room, ok := n.Component.(*building.Room); ok {
		return room.VolumeFlow, 0, nil
	}

	var totalFlow float64
	switch n.Component.Type() {
	case component.TypeTPiece:
		totalFlow = leftFlow + rightFlow
		n.VolumeFlow = totalFlow
	case component.TypeAirterminal:
		totalFlow = n.VolumeFlow
	default:
		totalFlow = leftFlow
		n.VolumeFlow = totalFlow
	}

	if flap, ok := n.Component.(*component.Flap); ok {
		angle := flap.AdjustAngle(totalFlow)
		n.PressureDrop = flap.PressureDrop(angle)
		n.dropComputed = true
	} else if !n.dropComputed {
		pressure, err := thermo.NewPressure(n.Component, n.VolumeFlow)
		if err != nil {
			return 0, 0, err
		}
		n.PressureDrop = pressure.PressureDrop
		n.dropComputed = true
	}

	return totalFlow, n.PressureDrop + leftDrop + rightDrop, nil
}
