package network

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"airnet/building"
	"airnet/component"
	"airnet/importer"
)

// ducts start with a placeholder velocity, the friction factor is refined
// once the traversal knows the real flows
const defaultMeanVelocity = 0.01

// componentKinds translates the CAD export vocabulary.
var componentKinds = map[string]component.Type{
	"ELBOW":        component.TypeBow,
	"DUCTROUND":    component.TypeDuct,
	"DUCTANGULAR":  component.TypeDuct,
	"BRANCHDUCT":   component.TypeTPiece,
	"CONFUSDIFFUS": component.TypeReduction,
	"AIRTERMINAL":  component.TypeAirterminal,
	"ROOM":         component.TypeRoom,
	"FLAP":         component.TypeFlap,
}

var airTypes = map[string]component.AirType{
	"ZUL": component.SA,
	"ABL": component.RA,
	"FOL": component.EA,
	"AUL": component.OA,
}

// Assembler turns imported records into connected components. Port A of a
// component points at its upstream neighbour, port B at the downstream one;
// return air runs flow against the edge direction, so their lookup is
// reversed.
type Assembler struct {
	records []importer.ComponentRecord
	edges   []importer.EdgeRecord
}

func NewAssembler(records []importer.ComponentRecord, edges []importer.EdgeRecord) *Assembler {
	return &Assembler{records: records, edges: edges}
}

// Components assembles every known record into its component, keyed by node
// id. Records with no component translation (air handlers, fans) are
// skipped.
func (a *Assembler) Components() (map[string]component.Component, error) {
	components := make(map[string]component.Component, len(a.records))
	for _, record := range a.records {
		kind, ok := componentKinds[record.Component]
		if !ok {
			log.WithFields(log.Fields{
				"nodeid":    record.NodeID,
				"component": record.Component,
			}).Debug("record skipped")
			continue
		}

		c, err := a.assemble(record, kind)
		if err != nil {
			return nil, fmt.Errorf("network: node %s: %w", record.NodeID, err)
		}
		components[record.NodeID] = c
	}

	log.WithField("count", len(components)).Info("components assembled")
	return components, nil
}

func (a *Assembler) assemble(record importer.ComponentRecord, kind component.Type) (component.Component, error) {
	reversed := record.System == "ABL"
	portA := a.upstream(record.NodeID, reversed)
	downstream := a.downstream(record.NodeID, reversed)

	general := component.General{
		ID:          record.NodeID,
		Orientation: component.Horizontal,
		AirType:     airTypes[record.System],
		PortA:       portA,
	}
	if kind != component.TypeAirterminal && kind != component.TypeRoom && len(downstream) > 0 {
		general.PortB = downstream[0]
	}

	switch kind {
	case component.TypeTPiece:
		if len(downstream) < 2 {
			return nil, fmt.Errorf("branch needs two downstream edges, got %d", len(downstream))
		}
		generalB := general
		generalB.PortB = downstream[1]
		connectorA, err := buildConnector(general, record.Form, record.Dimension, record.Length)
		if err != nil {
			return nil, err
		}
		connectorB, err := buildConnector(generalB, record.Form, record.Dimension, record.Length)
		if err != nil {
			return nil, err
		}
		return component.NewTPiece(connectorA, connectorB), nil

	case component.TypeReduction:
		connectorA, connectorB, err := buildReductionConnectors(general, record.Dimension, record.Length)
		if err != nil {
			return nil, err
		}
		reductionKind := component.Extension
		if connectorA.Area > connectorB.Area {
			reductionKind = component.Narrowing
		}
		return component.NewReduction(connectorA, connectorB, reductionKind)

	case component.TypeRoom:
		return buildRoom(general, record.Dimension, record.Length)
	}

	connector, err := buildConnector(general, record.Form, record.Dimension, record.Length)
	if err != nil {
		return nil, err
	}

	switch kind {
	case component.TypeDuct:
		return component.NewDuct(connector, defaultMeanVelocity)
	case component.TypeBow:
		return component.NewBow(connector, record.Angle)
	case component.TypeFlap:
		return component.NewFlap(connector), nil
	case component.TypeAirterminal:
		return component.NewAirterminal(connector), nil
	}
	return nil, fmt.Errorf("unsupported component kind %s", kind)
}

// upstream resolves the node feeding this one.
func (a *Assembler) upstream(nodeID string, reversed bool) string {
	for _, edge := range a.edges {
		if reversed {
			if edge.Parent == nodeID {
				return edge.Child
			}
		} else if edge.Child == nodeID {
			return edge.Parent
		}
	}
	return ""
}

// downstream resolves the nodes fed by this one, in edge order.
func (a *Assembler) downstream(nodeID string, reversed bool) []string {
	var children []string
	for _, edge := range a.edges {
		if reversed {
			if edge.Child == nodeID {
				children = append(children, edge.Parent)
			}
		} else if edge.Parent == nodeID {
			children = append(children, edge.Child)
		}
	}
	return children
}

func buildConnector(general component.General, form, dimension string, length float64) (*component.Connector, error) {
	switch form {
	case "circled":
		diameter, err := parseDimension(dimension)
		if err != nil {
			return nil, err
		}
		return component.NewCircled(general, diameter, length), nil
	case "rectangled":
		parts := strings.Split(dimension, "x")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad rectangled dimension %q", dimension)
		}
		width, err := parseDimension(parts[0])
		if err != nil {
			return nil, err
		}
		height, err := parseDimension(parts[1])
		if err != nil {
			return nil, err
		}
		return component.NewRectangled(general, width, height, length), nil
	}
	return nil, fmt.Errorf("unsupported form %q", form)
}

// buildReductionConnectors decodes the dash separated dimension pairs:
// two values are circle to circle, three circle to rectangle, four
// rectangle to rectangle.
func buildReductionConnectors(general component.General, dimension string, length float64) (*component.Connector, *component.Connector, error) {
	parts := strings.Split(dimension, "-")
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := parseDimension(part)
		if err != nil {
			return nil, nil, err
		}
		values[i] = v
	}

	switch len(values) {
	case 2:
		return component.NewCircled(general, values[0], length),
			component.NewCircled(general, values[1], length), nil
	case 3:
		return component.NewCircled(general, values[0], length),
			component.NewRectangled(general, values[1], values[2], length), nil
	case 4:
		return component.NewRectangled(general, values[0], values[1], length),
			component.NewRectangled(general, values[2], values[3], length), nil
	}
	return nil, nil, fmt.Errorf("bad reduction dimension %q", dimension)
}

// buildRoom decodes the room row: the dimension cell holds length and
// height, the length column holds the width, all in mm.
func buildRoom(general component.General, dimension string, width float64) (*building.Room, error) {
	parts := strings.Split(dimension, "x")
	if len(parts) != 2 {
		return nil, fmt.Errorf("bad room dimension %q", dimension)
	}
	length, err := parseDimension(parts[0])
	if err != nil {
		return nil, err
	}
	height, err := parseDimension(parts[1])
	if err != nil {
		return nil, err
	}

	connector := component.NewRectangled(general, int(width), height, float64(length))
	connector.Area = float64(length) * width / 1_000_000

	room := building.NewRoom("Room_"+general.ID, connector, 1)
	room.Area = connector.Area
	room.Height = float64(height) / 1_000
	return room, nil
}

func parseDimension(value string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// NodeIDs selects the node ids of one air system plus the rooms attached to
// it, in record order.
func NodeIDs(records []importer.ComponentRecord, system string) []string {
	var ids []string
	for _, record := range records {
		if record.System == system || record.System == "ROOM" {
			ids = append(ids, record.NodeID)
		}
	}
	return ids
}

// BuildNodes wraps the selected components into nodes and links children
// through the downstream ports.
func BuildNodes(components map[string]component.Component, nodeIDs []string) map[string]*Node {
	nodes := make(map[string]*Node, len(nodeIDs))
	for _, id := range nodeIDs {
		if c, ok := components[id]; ok {
			nodes[id] = NewNode(c)
		}
	}

	for _, node := range nodes {
		left := node.Component.Primary().General.PortB
		if child, ok := nodes[left]; ok {
			node.Add(Left, child)
		}
		if node.Component.Type() == component.TypeTPiece {
			right := node.Component.Secondary().General.PortB
			if child, ok := nodes[right]; ok {
				node.Add(Right, child)
			}
		}
	}
	return nodes
}
