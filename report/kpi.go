package report

import (
	"assetledger/cost"
	"assetledger/dates"
	"assetledger/models"
)

// MTTRUnavailable is reported for mean time to repair: requests carry no
// resolution timestamp to measure it from.
const MTTRUnavailable = "-"

type KPI struct {
	TotalAssets     int    `json:"total_assets"`
	UtilizationRate int    `json:"utilization_rate"`
	Incidents       int    `json:"incidents"`
	MTTR            string `json:"mttr"`
	CostMonth       int64  `json:"cost_month"`
	CostDiff        int64  `json:"cost_diff"`
}

// ComputeKPI derives the dashboard figures for a month. CostDiff compares
// against the previous calendar month.
func ComputeKPI(assets []models.Asset, requests []models.Request, year, month int) KPI {
	k := KPI{
		TotalAssets: len(assets),
		Incidents:   len(incidentsIn(requests, year, month)),
		MTTR:        MTTRUnavailable,
	}

	inUse := 0
	for _, a := range assets {
		if a.Status == models.StatusInUse {
			inUse++
		}
	}
	if k.TotalAssets > 0 {
		k.UtilizationRate = (200*inUse + k.TotalAssets) / (2 * k.TotalAssets)
	}

	k.CostMonth = MonthCost(assets, year, month)
	py, pm := dates.PrevMonth(year, month)
	k.CostDiff = k.CostMonth - MonthCost(assets, py, pm)
	return k
}

// MonthCost is the tenant's total monthly spend, excluding assets not yet
// purchased by the first of the month.
func MonthCost(assets []models.Asset, year, month int) int64 {
	var sum int64
	for i := range assets {
		sum += cost.MonthlyForAggregate(&assets[i], year, month)
	}
	return sum
}
