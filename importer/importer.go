package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var ErrMissingColumn = errors.New("importer: missing column")

// ComponentRecord is one normalized vertex row. Form and Dimension are
// derived from whichever dimension columns the row fills in.
type ComponentRecord struct {
	NodeID    string
	Component string
	System    string
	Form      string // circled, rectangled, reduction, room
	Dimension string
	Angle     float64 // degree
	Length    float64 // mm
}

// EdgeRecord is one directed connection, parent feeds child.
type EdgeRecord struct {
	ID     string
	Parent string
	Child  string
}

// Assignments maps canonical field names onto the CSV headers of the source
// documents.
type Assignments map[string]string

// DefaultComponentAssignments covers the vertex export of the CAD tool.
func DefaultComponentAssignments() Assignments {
	return Assignments{
		"nodeid":       "NodeID",
		"component":    "component type",
		"system":       "System",
		"diameter":     "diameter in mm",
		"width":        "width in mm",
		"height":       "height in mm",
		"diameter_in":  "diameter inlet in mm",
		"diameter_out": "diameter outlet in mm",
		"width_in":     "width inlet in mm",
		"height_in":    "height inlet in mm",
		"width_out":    "width outlet in mm",
		"height_out":   "height outlet in mm",
		"angle":        "deflection angle in degrees",
		"length":       "Length",
	}
}

// DefaultEdgeAssignments covers the edge export of the CAD tool.
func DefaultEdgeAssignments() Assignments {
	return Assignments{
		"edgeid": "EdgeID",
		"parent": "Source",
		"child":  "Target",
	}
}

// ReadComponents loads and normalizes a semicolon separated vertex export.
// Decimal commas are accepted in numeric cells.
func ReadComponents(path string, assign Assignments) ([]ComponentRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, assign, "nodeid", "component", "system"); err != nil {
		return nil, fmt.Errorf("importer: %s: %w", path, err)
	}

	records := make([]ComponentRecord, 0, len(rows))
	for _, row := range rows {
		cells := func(field string) string {
			return cell(row, header, assign[field])
		}

		angle, err := parseFloat(cells("angle"))
		if err != nil {
			return nil, fmt.Errorf("importer: node %s: angle: %w", cells("nodeid"), err)
		}
		length, err := parseFloat(cells("length"))
		if err != nil {
			return nil, fmt.Errorf("importer: node %s: length: %w", cells("nodeid"), err)
		}

		record := ComponentRecord{
			NodeID:    cells("nodeid"),
			Component: cells("component"),
			System:    cells("system"),
			Angle:     angle,
			Length:    length,
		}
		record.Form, record.Dimension = deriveForm(cells, record.System)
		records = append(records, record)
	}

	log.WithFields(log.Fields{
		"path":  path,
		"count": len(records),
	}).Info("components imported")
	return records, nil
}

// deriveForm picks the shape of a row from the filled dimension columns.
func deriveForm(cells func(string) string, system string) (form, dimension string) {
	switch {
	case cells("diameter") != "":
		return "circled", cells("diameter")
	case cells("width") != "":
		form = "rectangled"
		if system == "ROOM" {
			form = "room"
		}
		return form, cells("width") + "x" + cells("height")
	case cells("diameter_in") != "":
		return "reduction", joinDimensions(
			cells("diameter_in"), cells("diameter_out"),
			cells("width_out"), cells("height_out"))
	case cells("width_in") != "":
		return "reduction", joinDimensions(
			cells("width_in"), cells("height_in"),
			cells("diameter_out"), cells("width_out"), cells("height_out"))
	}
	return "", ""
}

func joinDimensions(values ...string) string {
	filled := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			filled = append(filled, v)
		}
	}
	return strings.Join(filled, "-")
}

// ReadEdges loads a semicolon separated edge export.
func ReadEdges(path string, assign Assignments) ([]EdgeRecord, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(header, assign, "edgeid", "parent", "child"); err != nil {
		return nil, fmt.Errorf("importer: %s: %w", path, err)
	}

	records := make([]EdgeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, EdgeRecord{
			ID:     cell(row, header, assign["edgeid"]),
			Parent: cell(row, header, assign["parent"]),
			Child:  cell(row, header, assign["child"]),
		})
	}

	log.WithFields(log.Fields{
		"path":  path,
		"count": len(records),
	}).Info("edges imported")
	return records, nil
}

// readCSV returns the data rows and a header name to column index map.
func readCSV(path string) ([][]string, map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("importer: %s: empty document", path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	return rows[1:], header, nil
}

// requireColumns checks that every named field has its assigned header in
// the document.
func requireColumns(header map[string]int, assign Assignments, fields ...string) error {
	for _, field := range fields {
		if _, ok := header[assign[field]]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, assign[field])
		}
	}
	return nil
}

func cell(row []string, header map[string]int, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseFloat accepts the decimal comma of the source exports. Empty cells
// parse to zero.
func parseFloat(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
}
