package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetledger/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func TestResolveNoData(t *testing.T) {
	got := ResolveAttribution(5, nil, nil, 2024, 3, ModeLatest)
	assert.Equal(t, Unassigned, got.Company)
	assert.Equal(t, Unassigned, got.Dept)
	assert.Equal(t, Unassigned, got.Label)
}

func TestResolveProfileFallback(t *testing.T) {
	profile := &models.User{ID: 5, Company: "Acme", Department: "Sales"}
	got := ResolveAttribution(5, profile, nil, 2024, 3, ModeLatest)
	assert.Equal(t, "Acme", got.Label)
	assert.Equal(t, "Sales", got.Dept)
}

func TestResolvePrecedence(t *testing.T) {
	profile := &models.User{ID: 5, Company: "Profile Co", Department: "Profile Dept"}
	history := []models.EmploymentHistory{
		{ID: 1, UserID: 5, StartDate: date(2023, 1, 1), Company: "Acme", Branch: "Osaka", Department: "Ops"},
	}
	got := ResolveAttribution(5, profile, history, 2024, 3, ModeLatest)
	assert.Equal(t, "Osaka", got.Label)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Osaka", got.Branch)
	assert.Equal(t, "Ops", got.Dept)

	history[0].Branch = ""
	history[0].Department = ""
	got = ResolveAttribution(5, profile, history, 2024, 3, ModeLatest)
	assert.Equal(t, "Acme", got.Label)
	assert.Equal(t, "Profile Dept", got.Dept)
}

func TestResolveLatestIgnoresMonth(t *testing.T) {
	history := []models.EmploymentHistory{
		{ID: 1, UserID: 5, StartDate: date(2020, 4, 1), Company: "Acme", Department: "Sales"},
		{ID: 2, UserID: 5, StartDate: date(2024, 6, 1), Company: "Acme", Department: "Support"},
		{ID: 3, UserID: 9, StartDate: date(2025, 1, 1), Company: "Other", Department: "HR"},
	}
	got := ResolveAttribution(5, nil, history, 2022, 1, ModeLatest)
	assert.Equal(t, "Support", got.Dept)
}

func TestResolveAsOfMonth(t *testing.T) {
	history := []models.EmploymentHistory{
		{ID: 1, UserID: 5, StartDate: date(2020, 4, 1), Company: "Acme", Department: "Sales"},
		{ID: 2, UserID: 5, StartDate: date(2024, 6, 1), Company: "Acme", Department: "Support"},
	}
	assert.Equal(t, "Sales", ResolveAttribution(5, nil, history, 2024, 5, ModeAsOf).Dept)
	assert.Equal(t, "Support", ResolveAttribution(5, nil, history, 2024, 6, ModeAsOf).Dept)
	assert.Equal(t, Unassigned, ResolveAttribution(5, nil, history, 2019, 1, ModeAsOf).Dept)
}

func TestResolveTieBreakIsStable(t *testing.T) {
	history := []models.EmploymentHistory{
		{ID: 4, UserID: 5, StartDate: date(2024, 1, 1), Department: "Finance"},
		{ID: 7, UserID: 5, StartDate: date(2024, 1, 1), Department: "Legal"},
	}
	assert.Equal(t, "Legal", ResolveAttribution(5, nil, history, 2024, 2, ModeLatest).Dept)

	history[0], history[1] = history[1], history[0]
	assert.Equal(t, "Legal", ResolveAttribution(5, nil, history, 2024, 2, ModeLatest).Dept)
}

func TestResolverNilUser(t *testing.T) {
	r := NewResolver(nil, nil, ModeLatest)
	assert.Equal(t, unassigned(), r.Resolve(nil, 2024, 1))
	assert.Equal(t, "", r.UserName(nil))
	assert.Equal(t, "", r.UserName(uintPtr(3)))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeLatest, m)

	m, err = ParseMode("as_of")
	require.NoError(t, err)
	assert.Equal(t, ModeAsOf, m)

	_, err = ParseMode("historic")
	assert.Error(t, err)
}
