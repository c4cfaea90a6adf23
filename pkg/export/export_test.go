package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Classes",
		Headers: []string{"Name", "Teacher", "Status"},
		Rows: [][]string{
			{"Algebra I", "Jane Doe", "active"},
			{"Biology, Lab", "Unassigned", "inactive"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, "Name,Teacher,Status\nAlgebra I,Jane Doe,active\n\"Biology, Lab\",Unassigned,inactive\n", string(out))
}

func TestCSVExporterNote(t *testing.T) {
	data := Dataset{Headers: []string{"Name", "Status"}, Note: "No classes found."}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "Name,Status\nNo classes found.,\n", string(out))
}

func TestExportRejectsRaggedRows(t *testing.T) {
	data := Dataset{Headers: []string{"A", "B"}, Rows: [][]string{{"only one"}}}

	_, err := NewCSVExporter().Render(data)
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(data)
	assert.Error(t, err)
}

func TestExportRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	wide := Dataset{Headers: []string{"A", "B", "C", "D", "E"}, Note: "Nothing here."}
	out, err = NewPDFExporter().Render(wide)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestForFormat(t *testing.T) {
	csvExp, err := ForFormat(FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "csv", csvExp.Extension())

	pdfExp, err := ForFormat(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdfExp.ContentType())

	_, err = ForFormat("xlsx")
	assert.Error(t, err)
}
