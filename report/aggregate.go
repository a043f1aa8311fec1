// Package report aggregates asset costs and breakdown incidents for a
// tenant and month, and derives the dashboard KPIs.
package report

import (
	"time"

	"assetledger/cost"
	"assetledger/dates"
	"assetledger/models"
)

// Input is a full snapshot of one tenant's data.
type Input struct {
	Assets   []models.Asset
	Users    []models.User
	History  []models.EmploymentHistory
	Requests []models.Request
}

// CostReportRow sums the monthly cost of the assets charged to one
// (company or branch, department) bucket.
type CostReportRow struct {
	Company    string `json:"company"`
	Dept       string `json:"dept"`
	AssetCount int    `json:"asset_count"`
	Cost       int64  `json:"cost"`
}

// AssetDetailRow is the flat per-asset view of a report month.
type AssetDetailRow struct {
	AssetID       string             `json:"asset_id"`
	ManagementTag string             `json:"management_tag"`
	Serial        string             `json:"serial"`
	Model         string             `json:"model"`
	Ownership     models.Ownership   `json:"ownership"`
	Status        models.AssetStatus `json:"status"`
	UserID        *uint              `json:"user_id"`
	UserName      string             `json:"user_name"`
	Company       string             `json:"company"`
	Dept          string             `json:"dept"`
	MonthlyCost   int64              `json:"monthly_cost"`
	TotalCost     int64              `json:"total_cost"`
}

type IncidentRow struct {
	RequestID uint                 `json:"request_id"`
	Date      time.Time            `json:"date"`
	UserID    uint                 `json:"user_id"`
	UserName  string               `json:"user_name"`
	UserDept  string               `json:"user_dept"`
	Detail    string               `json:"detail"`
	Status    models.RequestStatus `json:"status"`
}

type IncidentReport struct {
	Count    int           `json:"count"`
	Requests []IncidentRow `json:"requests"`
}

type Report struct {
	Year         int              `json:"year"`
	Month        int              `json:"month"`
	CostReport   []CostReportRow  `json:"cost_report"`
	AssetDetails []AssetDetailRow `json:"asset_detail_list"`
	Incidents    IncidentReport   `json:"incident_report"`
}

type bucketKey struct {
	company string
	dept    string
}

// Build computes the cost and incident report of a month. Cost rows keep the
// order in which their bucket first appears among in.Assets, so identical
// input always yields identical output.
func Build(in Input, year, month int, mode Mode) *Report {
	resolver := NewResolver(in.Users, in.History, mode)

	rep := &Report{
		Year:         year,
		Month:        month,
		CostReport:   []CostReportRow{},
		AssetDetails: make([]AssetDetailRow, 0, len(in.Assets)),
	}

	index := make(map[bucketKey]int)
	for i := range in.Assets {
		a := &in.Assets[i]
		attr := resolver.Resolve(a.AssignedUserID, year, month)
		c := cost.Compute(a, year, month)

		key := bucketKey{company: attr.Label, dept: attr.Dept}
		pos, ok := index[key]
		if !ok {
			pos = len(rep.CostReport)
			index[key] = pos
			rep.CostReport = append(rep.CostReport, CostReportRow{Company: key.company, Dept: key.dept})
		}
		rep.CostReport[pos].AssetCount++
		rep.CostReport[pos].Cost += c.Monthly

		rep.AssetDetails = append(rep.AssetDetails, AssetDetailRow{
			AssetID:       a.ID,
			ManagementTag: a.ManagementTag,
			Serial:        a.Serial,
			Model:         a.Model,
			Ownership:     a.Ownership,
			Status:        a.Status,
			UserID:        a.AssignedUserID,
			UserName:      resolver.UserName(a.AssignedUserID),
			Company:       attr.Label,
			Dept:          attr.Dept,
			MonthlyCost:   c.Monthly,
			TotalCost:     c.Total,
		})
	}

	rep.Incidents = buildIncidents(in.Requests, resolver, year, month)
	return rep
}

func buildIncidents(requests []models.Request, resolver *Resolver, year, month int) IncidentReport {
	out := IncidentReport{Requests: []IncidentRow{}}
	for _, r := range incidentsIn(requests, year, month) {
		uid := r.UserID
		out.Requests = append(out.Requests, IncidentRow{
			RequestID: r.ID,
			Date:      r.Date,
			UserID:    r.UserID,
			UserName:  resolver.UserName(&uid),
			UserDept:  resolver.Resolve(&uid, year, month).Dept,
			Detail:    r.Detail,
			Status:    r.Status,
		})
	}
	out.Count = len(out.Requests)
	return out
}

// incidentsIn returns the breakdown requests dated within the month.
func incidentsIn(requests []models.Request, year, month int) []models.Request {
	from, to := dates.MonthStart(year, month), dates.MonthEnd(year, month)
	var out []models.Request
	for _, r := range requests {
		if !r.IsBreakdown() || r.Date.IsZero() {
			continue
		}
		if dates.Within(r.Date, from, to) {
			out = append(out, r)
		}
	}
	return out
}

// TotalCost sums the cost rows.
func (r *Report) TotalCost() int64 {
	var sum int64
	for _, row := range r.CostReport {
		sum += row.Cost
	}
	return sum
}
