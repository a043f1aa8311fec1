// Package export renders a monthly report as CSV downloads and as an
// XLSX workbook. Column order is fixed; downstream spreadsheets rely on it.
package export

import (
	"fmt"

	"assetledger/dates"
	"assetledger/report"
)

type Section string

const (
	SectionCosts     Section = "costs"
	SectionAssets    Section = "assets"
	SectionIncidents Section = "incidents"
)

// Sections lists every section in workbook order.
var Sections = []Section{SectionCosts, SectionAssets, SectionIncidents}

func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown report section %q", s)
}

var (
	CostHeader     = []string{"Company", "Department", "Assets", "Monthly Cost"}
	AssetHeader    = []string{"Management Tag", "Serial", "Model", "Ownership", "Status", "User", "Company", "Department", "Monthly Cost", "Total Cost"}
	IncidentHeader = []string{"Date", "User", "Department", "Detail", "Status"}
)

// table flattens one section into a header and typed cell rows.
func table(rep *report.Report, section Section) ([]string, [][]any, error) {
	switch section {
	case SectionCosts:
		rows := make([][]any, 0, len(rep.CostReport))
		for _, r := range rep.CostReport {
			rows = append(rows, []any{r.Company, r.Dept, r.AssetCount, r.Cost})
		}
		return CostHeader, rows, nil
	case SectionAssets:
		rows := make([][]any, 0, len(rep.AssetDetails))
		for _, r := range rep.AssetDetails {
			rows = append(rows, []any{
				r.ManagementTag, r.Serial, r.Model, string(r.Ownership), string(r.Status),
				r.UserName, r.Company, r.Dept, r.MonthlyCost, r.TotalCost,
			})
		}
		return AssetHeader, rows, nil
	case SectionIncidents:
		rows := make([][]any, 0, len(rep.Incidents.Requests))
		for _, r := range rep.Incidents.Requests {
			rows = append(rows, []any{
				r.Date.Format(dates.Layout), r.UserName, r.UserDept, r.Detail, string(r.Status),
			})
		}
		return IncidentHeader, rows, nil
	}
	return nil, nil, fmt.Errorf("unknown report section %q", section)
}

// Filename is the download name of a section, e.g. asset_report_2024_03_costs.csv.
// An empty section names the whole workbook.
func Filename(year, month int, section Section, ext string) string {
	if section == "" {
		return fmt.Sprintf("asset_report_%d_%02d.%s", year, month, ext)
	}
	return fmt.Sprintf("asset_report_%d_%02d_%s.%s", year, month, section, ext)
}
