package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"assetledger/models"
	"assetledger/report"
)

func sampleReport() *report.Report {
	uid := uint(1)
	return &report.Report{
		Year:  2024,
		Month: 3,
		CostReport: []report.CostReportRow{
			{Company: "Acme", Dept: "Sales", AssetCount: 2, Cost: 5500},
			{Company: report.Unassigned, Dept: report.Unassigned, AssetCount: 1, Cost: 0},
		},
		AssetDetails: []report.AssetDetailRow{{
			AssetID: "a1", ManagementTag: "PC-001", Serial: "SN1", Model: `Think "Pad"`,
			Ownership: models.OwnershipOwned, Status: models.StatusInUse,
			UserID: &uid, UserName: "Aki Sato", Company: "Acme", Dept: "Sales",
			MonthlyCost: 2500, TotalCost: 120000,
		}},
		Incidents: report.IncidentReport{
			Count: 1,
			Requests: []report.IncidentRow{{
				RequestID: 9, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				UserID: 1, UserName: "Aki Sato", UserDept: "Sales",
				Detail: "keyboard, broken", Status: models.RequestPending,
			}},
		},
	}
}

func TestWriteCSVCosts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), SectionCosts))

	want := BOM +
		`"Company","Department","Assets","Monthly Cost"` + "\n" +
		`"Acme","Sales","2","5500"` + "\n" +
		`"Unassigned","Unassigned","1","0"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVAssetsEscapesQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), SectionAssets))

	lines := strings.Split(strings.TrimPrefix(buf.String(), BOM), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Management Tag","Serial","Model","Ownership","Status","User","Company","Department","Monthly Cost","Total Cost"`, lines[0])
	assert.Equal(t, `"PC-001","SN1","Think ""Pad""","owned","in_use","Aki Sato","Acme","Sales","2500","120000"`, lines[1])
	assert.Equal(t, "", lines[2])
}

func TestWriteCSVIncidents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport(), SectionIncidents))
	assert.Contains(t, buf.String(), `"2024-03-05","Aki Sato","Sales","keyboard, broken","pending"`)
}

func TestWriteCSVUnknownSection(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteCSV(&buf, sampleReport(), Section("audit")))
	assert.Zero(t, buf.Len())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Costs", "Assets", "Incidents"}, f.GetSheetList())

	costs, err := f.GetRows("Costs")
	require.NoError(t, err)
	require.Len(t, costs, 3)
	assert.Equal(t, CostHeader, costs[0])
	assert.Equal(t, []string{"Acme", "Sales", "2", "5500"}, costs[1])

	assets, err := f.GetRows("Assets")
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, `Think "Pad"`, assets[1][2])
}

func TestParseSectionAndFilename(t *testing.T) {
	s, err := ParseSection("incidents")
	require.NoError(t, err)
	assert.Equal(t, SectionIncidents, s)

	_, err = ParseSection("")
	assert.Error(t, err)

	assert.Equal(t, "asset_report_2024_03_costs.csv", Filename(2024, 3, SectionCosts, "csv"))
	assert.Equal(t, "asset_report_2024_11.xlsx", Filename(2024, 11, "", "xlsx"))
}
