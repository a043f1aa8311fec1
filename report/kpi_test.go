package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assetledger/models"
)

func TestComputeKPIEmpty(t *testing.T) {
	k := ComputeKPI(nil, nil, 2024, 3)
	assert.Equal(t, 0, k.TotalAssets)
	assert.Equal(t, 0, k.UtilizationRate)
	assert.Equal(t, int64(0), k.CostMonth)
	assert.Equal(t, MTTRUnavailable, k.MTTR)
}

func TestComputeKPI(t *testing.T) {
	in := sampleInput()
	k := ComputeKPI(in.Assets, in.Requests, 2024, 3)

	assert.Equal(t, 6, k.TotalAssets)
	assert.Equal(t, 67, k.UtilizationRate)
	assert.Equal(t, 2, k.Incidents)
	// owned 2500 + rental 1000 + lease 3000 + pool owned 1000
	assert.Equal(t, int64(7500), k.CostMonth)
	assert.Equal(t, int64(0), k.CostDiff)

	apr := ComputeKPI(in.Assets, in.Requests, 2024, 4)
	assert.Equal(t, int64(6500), apr.CostMonth)
	assert.Equal(t, int64(-1000), apr.CostDiff)
	assert.Equal(t, 1, apr.Incidents)
}

func TestComputeKPIYearRollover(t *testing.T) {
	assets := []models.Asset{{
		Ownership:          models.OwnershipOwned,
		Status:             models.StatusInUse,
		PurchaseDate:       datePtr(2024, 1, 1),
		PurchaseCost:       1200,
		DepreciationMonths: 12,
	}}
	k := ComputeKPI(assets, nil, 2024, 1)
	assert.Equal(t, int64(100), k.CostMonth)
	assert.Equal(t, int64(100), k.CostDiff)
	assert.Equal(t, 100, k.UtilizationRate)
}

func TestMonthCostSkipsMidMonthPurchase(t *testing.T) {
	assets := []models.Asset{{
		Ownership:          models.OwnershipOwned,
		PurchaseDate:       datePtr(2024, 3, 15),
		PurchaseCost:       1200,
		DepreciationMonths: 12,
	}}
	assert.Equal(t, int64(0), MonthCost(assets, 2024, 3))
	assert.Equal(t, int64(100), MonthCost(assets, 2024, 4))
}
