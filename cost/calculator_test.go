package cost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"assetledger/models"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestComputeOwnedDepreciationWindow(t *testing.T) {
	a := &models.Asset{
		Ownership:          models.OwnershipOwned,
		PurchaseDate:       day(2024, 1, 20),
		PurchaseCost:       120000,
		DepreciationMonths: 36,
	}

	tests := []struct {
		name        string
		year, month int
		monthly     int64
	}{
		{"purchase month", 2024, 1, 3333},
		{"last month of window", 2026, 12, 3333},
		{"first month after window", 2027, 1, 0},
		{"before purchase", 2023, 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(a, tt.year, tt.month)
			assert.Equal(t, tt.monthly, got.Monthly)
			assert.Equal(t, int64(120000), got.Total)
		})
	}
}

func TestComputeOwnedRoundsHalfUp(t *testing.T) {
	a := &models.Asset{
		Ownership:          models.OwnershipOwned,
		PurchaseDate:       day(2024, 4, 1),
		PurchaseCost:       1001,
		DepreciationMonths: 2,
	}
	assert.Equal(t, int64(501), Compute(a, 2024, 4).Monthly)

	a.PurchaseCost = 1000
	a.DepreciationMonths = 6
	assert.Equal(t, int64(167), Compute(a, 2024, 5).Monthly)
}

func TestComputeOwnedWithoutDepreciation(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipOwned,
		PurchaseDate: day(2024, 4, 1),
		PurchaseCost: 50000,
	}
	got := Compute(a, 2024, 4)
	assert.Equal(t, int64(0), got.Monthly)
	assert.Equal(t, int64(50000), got.Total)
}

func TestComputeOwnedMissingPurchaseDate(t *testing.T) {
	a := &models.Asset{
		Ownership:          models.OwnershipOwned,
		PurchaseCost:       50000,
		DepreciationMonths: 10,
	}
	got := Compute(a, 2024, 4)
	assert.Equal(t, int64(0), got.Monthly)
	assert.Equal(t, int64(50000), got.Total)
}

func TestComputeRentalClosedContract(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipRental,
		PurchaseDate: day(2024, 1, 1),
		ReturnDate:   day(2024, 3, 15),
		MonthlyCost:  1000,
	}

	mar := Compute(a, 2024, 3)
	assert.Equal(t, int64(1000), mar.Monthly)
	assert.Equal(t, int64(3000), mar.Total)

	apr := Compute(a, 2024, 4)
	assert.Equal(t, int64(0), apr.Monthly)
	assert.Equal(t, int64(3000), apr.Total)
}

func TestComputeRentalReturnBoundary(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipRental,
		PurchaseDate: day(2024, 1, 10),
		ReturnDate:   day(2024, 4, 1),
		MonthlyCost:  800,
	}
	assert.Equal(t, int64(800), Compute(a, 2024, 4).Monthly, "return on the first day still bills")

	a.ReturnDate = day(2024, 3, 31)
	assert.Equal(t, int64(0), Compute(a, 2024, 4).Monthly, "return the day before is closed")
}

func TestComputeRentalDayOfMonthRule(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipRental,
		PurchaseDate: day(2024, 1, 20),
		ReturnDate:   day(2024, 3, 19),
		MonthlyCost:  1000,
	}
	assert.Equal(t, int64(2000), Compute(a, 2024, 3).Total)

	a.ReturnDate = day(2024, 1, 25)
	assert.Equal(t, int64(1000), Compute(a, 2024, 1).Total, "at least one month")
}

func TestComputeLease(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipLease,
		PurchaseDate: day(2023, 6, 1),
		MonthlyCost:  2500,
		Months:       24,
	}
	got := Compute(a, 2024, 1)
	assert.Equal(t, int64(2500), got.Monthly)
	assert.Equal(t, int64(60000), got.Total)

	a.ReturnDate = day(2024, 2, 10)
	assert.Equal(t, int64(2500*9), Compute(a, 2024, 1).Total, "return date wins over months")
}

func TestComputeRecurringWithoutTerm(t *testing.T) {
	a := &models.Asset{
		Ownership:    models.OwnershipRental,
		PurchaseDate: day(2024, 1, 1),
		MonthlyCost:  1000,
	}
	got := Compute(a, 2024, 2)
	assert.Equal(t, int64(1000), got.Monthly)
	assert.Equal(t, int64(0), got.Total)
}

func TestComputeRecurringOwnershipsShareFeeRule(t *testing.T) {
	for _, o := range []models.Ownership{models.OwnershipRental, models.OwnershipLease} {
		a := &models.Asset{Ownership: o, PurchaseDate: day(2024, 1, 1), MonthlyCost: 1200, Months: 12}
		assert.Equal(t, Result{Monthly: 1200, Total: 14400}, Compute(a, 2024, 5), string(o))
	}
}

func TestComputeBYODIsFree(t *testing.T) {
	a := &models.Asset{
		Ownership:          models.OwnershipBYOD,
		PurchaseDate:       day(2024, 1, 1),
		PurchaseCost:       90000,
		DepreciationMonths: 12,
		MonthlyCost:        500,
	}
	assert.Equal(t, Result{}, Compute(a, 2024, 1))
}

func TestComputeMalformed(t *testing.T) {
	assert.Equal(t, Result{}, Compute(nil, 2024, 1))
	assert.Equal(t, Result{}, Compute(&models.Asset{Ownership: "unknown", MonthlyCost: 10}, 2024, 1))

	neg := &models.Asset{Ownership: models.OwnershipRental, MonthlyCost: -100, Months: 3}
	assert.Equal(t, Result{}, Compute(neg, 2024, 1))
}

func TestMonthlyForAggregateSkipsFuturePurchases(t *testing.T) {
	a := &models.Asset{
		Ownership:          models.OwnershipOwned,
		PurchaseDate:       day(2024, 3, 10),
		PurchaseCost:       1200,
		DepreciationMonths: 12,
	}
	assert.Equal(t, int64(100), Compute(a, 2024, 3).Monthly)
	assert.Equal(t, int64(0), MonthlyForAggregate(a, 2024, 3))
	assert.Equal(t, int64(100), MonthlyForAggregate(a, 2024, 4))

	a.PurchaseDate = day(2024, 3, 1)
	assert.Equal(t, int64(100), MonthlyForAggregate(a, 2024, 3))
	assert.Equal(t, int64(0), MonthlyForAggregate(nil, 2024, 3))
}
