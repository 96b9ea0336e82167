package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadComponents(t *testing.T) {
	records, err := ReadComponents(
		filepath.Join("testdata", "vertices.csv"),
		DefaultComponentAssignments(),
	)
	require.NoError(t, err)
	require.Len(t, records, 11)

	byID := map[string]ComponentRecord{}
	for _, r := range records {
		byID[r.NodeID] = r
	}

	flap := byID["1"]
	assert.Equal(t, "FLAP", flap.Component)
	assert.Equal(t, "circled", flap.Form)
	assert.Equal(t, "315", flap.Dimension)

	bow := byID["3"]
	assert.Equal(t, 90.0, bow.Angle)

	room := byID["7"]
	assert.Equal(t, "room", room.Form)
	assert.Equal(t, "5000x2700", room.Dimension)
	assert.Equal(t, 4000.0, room.Length)

	reduction := byID["8"]
	assert.Equal(t, "reduction", reduction.Form)
	assert.Equal(t, "250-200", reduction.Dimension)

	// decimal comma in the length cell
	assert.Equal(t, 1500.0, byID["9"].Length)
}

func TestReadEdges(t *testing.T) {
	records, err := ReadEdges(
		filepath.Join("testdata", "edges.csv"),
		DefaultEdgeAssignments(),
	)
	require.NoError(t, err)
	require.Len(t, records, 10)

	assert.Equal(t, EdgeRecord{ID: "e1", Parent: "1", Child: "2"}, records[0])
	assert.Equal(t, EdgeRecord{ID: "e7", Parent: "4", Child: "8"}, records[6])
}

func TestReadComponentsMissingFile(t *testing.T) {
	_, err := ReadComponents(filepath.Join("testdata", "nope.csv"), DefaultComponentAssignments())
	assert.Error(t, err)
}

func TestReadComponentsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vertices.csv")
	require.NoError(t, os.WriteFile(path, []byte("System;Length\nZUL;1000\n"), 0644))

	_, err := ReadComponents(path, DefaultComponentAssignments())
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "NodeID")
}

func TestReadEdgesMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.csv")
	require.NoError(t, os.WriteFile(path, []byte("EdgeID;Source\ne1;1\n"), 0644))

	_, err := ReadEdges(path, DefaultEdgeAssignments())
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Target")
}

func TestParseFloat(t *testing.T) {
	got, err := parseFloat("12,5")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	got, err = parseFloat("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = parseFloat("12x5")
	assert.Error(t, err)
}
