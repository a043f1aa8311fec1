package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"assetledger/export"
	"assetledger/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Year:  2024,
		Month: 3,
		CostReport: []report.CostReportRow{
			{Company: "Acme", Dept: "Sales", AssetCount: 2, Cost: 5500},
		},
		AssetDetails: []report.AssetDetailRow{},
		Incidents:    report.IncidentReport{Requests: []report.IncidentRow{}},
	}
}

func TestWriteReportFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, writeReportFile(path, sampleReport(), "xlsx", ""))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Costs", "D2")
	require.NoError(t, err)
	assert.Equal(t, "5500", v)
}

func TestWriteReportFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.csv")

	require.NoError(t, writeReportFile(path, sampleReport(), "csv", export.SectionCosts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, export.BOM+
		`"Company","Department","Assets","Monthly Cost"`+"\n"+
		`"Acme","Sales","2","5500"`+"\n", string(data))
}

func TestWriteReportFileErrors(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "missing", "report.json")
	assert.Error(t, writeReportFile(missingDir, sampleReport(), "json", ""))

	path := filepath.Join(t.TempDir(), "report.pdf")
	assert.Error(t, writeReportFile(path, sampleReport(), "pdf", ""))
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleReport(), "json", ""))
	assert.Contains(t, buf.String(), `"cost_report"`)
	assert.Contains(t, buf.String(), `"company": "Acme"`)
}
