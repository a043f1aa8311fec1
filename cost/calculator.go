// Package cost computes what an asset costs a tenant in a given month and
// over its whole life, according to its ownership model.
package cost

import (
	"assetledger/dates"
	"assetledger/models"
)

// Result is the cost of one asset for one report month.
// Monthly is the charge attributed to that month; Total is the lifetime
// cost of the asset and does not depend on the month.
type Result struct {
	Monthly int64 `json:"monthly"`
	Total   int64 `json:"total"`
}

// Compute returns the cost of a for the month (year, month).
// Missing or malformed values count as zero; Compute never fails.
func Compute(a *models.Asset, year, month int) Result {
	if a == nil {
		return Result{}
	}
	switch {
	case a.Ownership == models.OwnershipOwned:
		return computeOwned(a, year, month)
	case a.Ownership.Recurring():
		return computeRecurring(a, year, month)
	default:
		return Result{}
	}
}

// MonthlyForAggregate is the monthly cost used when summing a tenant's spend
// for a month: assets bought after the first day of the month count as zero.
func MonthlyForAggregate(a *models.Asset, year, month int) int64 {
	if a == nil {
		return 0
	}
	if a.PurchaseDate != nil && dates.Day(*a.PurchaseDate).After(dates.MonthStart(year, month)) {
		return 0
	}
	return Compute(a, year, month).Monthly
}

// Straight-line depreciation: the purchase cost is spread evenly over
// DepreciationMonths starting with the purchase month.
func computeOwned(a *models.Asset, year, month int) Result {
	res := Result{Total: orZero(a.PurchaseCost)}
	if a.DepreciationMonths <= 0 || a.PurchaseDate == nil {
		return res
	}
	passed := dates.MonthIndex(*a.PurchaseDate, year, month)
	if passed >= 0 && passed < a.DepreciationMonths {
		res.Monthly = roundDiv(res.Total, int64(a.DepreciationMonths))
	}
	return res
}

func computeRecurring(a *models.Asset, year, month int) Result {
	fee := orZero(a.MonthlyCost)
	res := Result{Monthly: fee}

	// A contract returned before the report month starts no longer bills.
	if a.ReturnDate != nil && dates.Before(*a.ReturnDate, dates.MonthStart(year, month)) {
		res.Monthly = 0
	}

	switch {
	case a.ReturnDate != nil && a.PurchaseDate != nil:
		n := dates.ElapsedMonths(*a.PurchaseDate, *a.ReturnDate)
		if n < 1 {
			n = 1
		}
		res.Total = fee * int64(n)
	case a.Months > 0:
		res.Total = fee * int64(a.Months)
	}
	return res
}

func orZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// roundDiv divides rounding halves up. n must be non-negative, d positive.
func roundDiv(n, d int64) int64 {
	return (2*n + d) / (2 * d)
}
