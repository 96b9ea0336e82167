package network

import (
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"airnet/model"
)

// SectionSpec describes one duct section as a difference of subtree
// traversals: the drops of the Minus nodes are subtracted from the drops of
// the Plus nodes.
type SectionSpec struct {
	Name  string
	Plus  []string
	Minus []string
}

// RoutePlan evaluates the duct sections of one air system. Terminals preset
// the design volume flows on the air terminal nodes before each evaluation.
// One plan is shared by every client, traversals mutate the node state, so
// Evaluate and Reset serialise through the mutex.
type RoutePlan struct {
	Nodes     map[string]*Node
	Terminals map[string]float64
	Sections  []SectionSpec

	mu sync.Mutex
}

// Reset clears all computed state and reapplies the terminal presets.
func (p *RoutePlan) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *RoutePlan) reset() {
	seen := make(map[*Node]bool, len(p.Nodes))
	for _, node := range p.Nodes {
		if !seen[node] {
			node.VolumeFlow = 0
			node.PressureDrop = 0
			node.dropComputed = false
			seen[node] = true
		}
	}
	for id, flow := range p.Terminals {
		if node, ok := p.Nodes[id]; ok {
			node.VolumeFlow = flow
		}
	}
}

// Evaluate resets the plan and computes every section, rounded to two
// decimals.
func (p *RoutePlan) Evaluate() ([]model.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()

	results := make([]model.RouteResult, 0, len(p.Sections))
	for _, section := range p.Sections {
		var drop, flow float64
		for i, id := range section.Plus {
			node, ok := p.Nodes[id]
			if !ok {
				return nil, fmt.Errorf("network: section %s: unknown node %s", section.Name, id)
			}
			nodeFlow, nodeDrop, err := node.Traverse()
			if err != nil {
				return nil, fmt.Errorf("network: section %s: %w", section.Name, err)
			}
			drop += nodeDrop
			if i == 0 {
				flow = nodeFlow
			}
		}
		for _, id := range section.Minus {
			node, ok := p.Nodes[id]
			if !ok {
				return nil, fmt.Errorf("network: section %s: unknown node %s", section.Name, id)
			}
			_, nodeDrop, err := node.Traverse()
			if err != nil {
				return nil, fmt.Errorf("network: section %s: %w", section.Name, err)
			}
			drop -= nodeDrop
		}

		result := model.RouteResult{
			Route:        section.Name,
			VolumeFlow:   round2(flow),
			PressureDrop: round2(drop),
		}
		log.WithFields(log.Fields{
			"route":         result.Route,
			"volume_flow":   result.VolumeFlow,
			"pressure_drop": result.PressureDrop,
		}).Debug("section evaluated")
		results = append(results, result)
	}
	return results, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
