package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airnet/building"
	"airnet/component"
)

func circled(id, portA, portB string, diameter int, length float64) *component.Connector {
	general := component.General{
		ID:          id,
		Orientation: component.Horizontal,
		AirType:     component.SA,
		PortA:       portA,
		PortB:       portB,
	}
	return component.NewCircled(general, diameter, length)
}

func TestTraverseSumsBranchFlows(t *testing.T) {
	branch := NewNode(component.NewTPiece(
		circled("4", "3", "5", 250, 0),
		circled("4", "3", "8", 250, 0),
	))
	left := branch.Add(Left, NewNode(component.NewAirterminal(circled("5", "4", "", 250, 0))))
	right := branch.Add(Right, NewNode(component.NewAirterminal(circled("8", "4", "", 250, 0))))
	left.VolumeFlow = 100
	right.VolumeFlow = 50

	flow, drop, err := branch.Traverse()
	require.NoError(t, err)
	assert.Equal(t, 150.0, flow)
	assert.Equal(t, 150.0, branch.VolumeFlow)
	assert.Greater(t, drop, 0.0)

	// repeated traversal reuses the memoized drops
	flow2, drop2, err := branch.Traverse()
	require.NoError(t, err)
	assert.Equal(t, flow, flow2)
	assert.Equal(t, drop, drop2)
}

func TestTraverseRoomLeaf(t *testing.T) {
	room := building.NewRoom("Room_7", circled("7", "6", "", 250, 0), 1)
	room.VolumeFlow = 240

	flow, drop, err := NewNode(room).Traverse()
	require.NoError(t, err)
	assert.Equal(t, 240.0, flow)
	assert.Equal(t, 0.0, drop)
}

func TestTraverseFlapFollowsFlow(t *testing.T) {
	flap := NewNode(component.NewFlap(circled("1", "", "2", 315, 0)))
	terminal := flap.Add(Left, NewNode(component.NewAirterminal(circled("2", "1", "", 315, 0))))

	terminal.VolumeFlow = 240
	_, drop1, err := flap.Traverse()
	require.NoError(t, err)

	terminal.VolumeFlow = 480
	_, drop2, err := flap.Traverse()
	require.NoError(t, err)

	// the blade angle shrinks with rising flow, so the drop falls
	assert.Less(t, drop2, drop1)
}

func TestTraverseInvalidGeometry(t *testing.T) {
	broken := NewNode(component.NewAirterminal(&component.Connector{
		General: component.General{ID: "6", PortA: "5"},
	}))
	duct := NewNode(component.NewFlap(circled("5", "", "6", 200, 0)))
	duct.Add(Left, broken)
	broken.VolumeFlow = 100

	_, _, err := broken.Traverse()
	assert.ErrorIs(t, err, component.ErrInvalidGeometry)
}

func TestInvalidate(t *testing.T) {
	terminal := NewNode(component.NewAirterminal(circled("6", "5", "", 250, 0)))
	terminal.VolumeFlow = 240

	_, _, err := terminal.Traverse()
	require.NoError(t, err)
	assert.True(t, terminal.dropComputed)

	terminal.Invalidate()
	assert.False(t, terminal.dropComputed)
	assert.Equal(t, 0.0, terminal.VolumeFlow)
}
