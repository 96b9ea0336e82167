package main

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"airnet/config"
	"airnet/importer"
	"airnet/network"
	"airnet/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	cfg := config.Load(config.DefaultPath)

	records, edges := loadNetwork(cfg)
	components, err := network.NewAssembler(records, edges).Components()
	if err != nil {
		log.WithError(err).Fatal("assembling network")
	}

	nodes := network.BuildNodes(components, network.NodeIDs(records, cfg.System))

	terminals := make(map[string]float64)
	for _, record := range records {
		if record.Component == "AIRTERMINAL" && record.System == cfg.System {
			terminals[record.NodeID] = cfg.TerminalFlow
		}
	}

	plan := &network.RoutePlan{
		Nodes:     nodes,
		Terminals: terminals,
		Sections:  demoSections(),
	}

	results, err := plan.Evaluate()
	if err != nil {
		log.WithError(err).Fatal("evaluating routes")
	}
	for _, result := range results {
		log.WithFields(log.Fields{
			"route":         result.Route,
			"volume_flow":   result.VolumeFlow,
			"pressure_drop": result.PressureDrop,
		}).Info("route evaluated")
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.ServerAddr, upgrader, plan)
	if err := s.Serve(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// loadNetwork reads the CAD exports, falling back to the built-in demo
// network when the files are not available.
func loadNetwork(cfg config.Config) ([]importer.ComponentRecord, []importer.EdgeRecord) {
	records, err := importer.ReadComponents(
		filepath.Join(cfg.ImportDir, cfg.VerticesFile),
		importer.DefaultComponentAssignments(),
	)
	if err != nil {
		log.WithError(err).Warn("vertices import failed, using demo network")
		return demoRecords(), demoEdges()
	}

	edges, err := importer.ReadEdges(
		filepath.Join(cfg.ImportDir, cfg.EdgesFile),
		importer.DefaultEdgeAssignments(),
	)
	if err != nil {
		log.WithError(err).Warn("edges import failed, using demo network")
		return demoRecords(), demoEdges()
	}
	return records, edges
}

// demoSections covers the shipped demo network: one section per branch and
// the shared main run.
func demoSections() []network.SectionSpec {
	return []network.SectionSpec{
		{Name: "section 1", Plus: []string{"5"}},
		{Name: "section 2", Plus: []string{"8"}},
		{Name: "main run", Plus: []string{"1"}, Minus: []string{"5", "8"}},
	}
}

func demoRecords() []importer.ComponentRecord {
	return []importer.ComponentRecord{
		{NodeID: "1", Component: "FLAP", System: "ZUL", Form: "circled", Dimension: "315"},
		{NodeID: "2", Component: "DUCTROUND", System: "ZUL", Form: "circled", Dimension: "315", Length: 3000},
		{NodeID: "3", Component: "ELBOW", System: "ZUL", Form: "circled", Dimension: "315", Angle: 90},
		{NodeID: "4", Component: "BRANCHDUCT", System: "ZUL", Form: "circled", Dimension: "250"},
		{NodeID: "5", Component: "DUCTROUND", System: "ZUL", Form: "circled", Dimension: "250", Length: 2000},
		{NodeID: "6", Component: "AIRTERMINAL", System: "ZUL", Form: "circled", Dimension: "250"},
		{NodeID: "7", Component: "ROOM", System: "ROOM", Form: "room", Dimension: "5000x2700", Length: 4000},
		{NodeID: "8", Component: "CONFUSDIFFUS", System: "ZUL", Form: "reduction", Dimension: "250-200", Length: 250},
		{NodeID: "9", Component: "DUCTROUND", System: "ZUL", Form: "circled", Dimension: "200", Length: 1500},
		{NodeID: "10", Component: "AIRTERMINAL", System: "ZUL", Form: "circled", Dimension: "200"},
		{NodeID: "11", Component: "ROOM", System: "ROOM", Form: "room", Dimension: "4000x2700", Length: 3000},
	}
}

func demoEdges() []importer.EdgeRecord {
	return []importer.EdgeRecord{
		{ID: "e1", Parent: "1", Child: "2"},
		{ID: "e2", Parent: "2", Child: "3"},
		{ID: "e3", Parent: "3", Child: "4"},
		{ID: "e4", Parent: "4", Child: "5"},
		{ID: "e5", Parent: "5", Child: "6"},
		{ID: "e6", Parent: "6", Child: "7"},
		{ID: "e7", Parent: "4", Child: "8"},
		{ID: "e8", Parent: "8", Child: "9"},
		{ID: "e9", Parent: "9", Child: "10"},
		{ID: "e10", Parent: "10", Child: "11"},
	}
}
