package report

import (
	"fmt"
	"sort"

	"assetledger/dates"
	"assetledger/models"
)

// Unassigned labels costs that cannot be attributed to an organizational unit.
const Unassigned = "Unassigned"

// Mode selects which employment history entry attributes a report month.
type Mode string

const (
	// ModeLatest always uses the user's most recent entry, whatever the month.
	ModeLatest Mode = "latest"
	// ModeAsOf uses the most recent entry that had started by the first day
	// of the report month.
	ModeAsOf Mode = "as_of"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeLatest:
		return ModeLatest, nil
	case ModeAsOf:
		return ModeAsOf, nil
	}
	return "", fmt.Errorf("unknown attribution mode %q", s)
}

// Attribution is the organizational bucket a user's assets are charged to.
// Label is the reporting key: branch, else company.
type Attribution struct {
	Company string `json:"company"`
	Branch  string `json:"branch"`
	Dept    string `json:"dept"`
	Label   string `json:"label"`
}

func unassigned() Attribution {
	return Attribution{Company: Unassigned, Dept: Unassigned, Label: Unassigned}
}

// ResolveAttribution picks the entry of userID from history that applies to
// the report month and fills the gaps from the user's profile. profile may be nil.
func ResolveAttribution(userID uint, profile *models.User, history []models.EmploymentHistory, year, month int, mode Mode) Attribution {
	var own []models.EmploymentHistory
	for _, h := range history {
		if h.UserID == userID {
			own = append(own, h)
		}
	}
	sortNewestFirst(own)
	return resolveSorted(profile, own, year, month, mode)
}

func resolveSorted(profile *models.User, entries []models.EmploymentHistory, year, month int, mode Mode) Attribution {
	var entry *models.EmploymentHistory
	cutoff := dates.MonthStart(year, month)
	for i := range entries {
		if mode == ModeAsOf && dates.Day(entries[i].StartDate).After(cutoff) {
			continue
		}
		entry = &entries[i]
		break
	}

	var profileCompany, profileDept string
	if profile != nil {
		profileCompany, profileDept = profile.Company, profile.Department
	}

	var a Attribution
	if entry != nil {
		a.Company = entry.Company
		a.Branch = entry.Branch
		a.Dept = entry.Department
	}
	a.Company = firstNonEmpty(a.Company, profileCompany, Unassigned)
	a.Dept = firstNonEmpty(a.Dept, profileDept, Unassigned)
	a.Label = firstNonEmpty(a.Branch, a.Company)
	return a
}

// sortNewestFirst orders entries by start date descending; the higher id
// wins a tie so that resolution is stable.
func sortNewestFirst(entries []models.EmploymentHistory) {
	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := dates.Day(entries[i].StartDate), dates.Day(entries[j].StartDate)
		if !si.Equal(sj) {
			return si.After(sj)
		}
		return entries[i].ID > entries[j].ID
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Resolver answers attribution lookups for one tenant snapshot.
type Resolver struct {
	mode     Mode
	profiles map[uint]*models.User
	history  map[uint][]models.EmploymentHistory
}

func NewResolver(users []models.User, history []models.EmploymentHistory, mode Mode) *Resolver {
	r := &Resolver{
		mode:     mode,
		profiles: make(map[uint]*models.User, len(users)),
		history:  make(map[uint][]models.EmploymentHistory),
	}
	for i := range users {
		r.profiles[users[i].ID] = &users[i]
	}
	for _, h := range history {
		r.history[h.UserID] = append(r.history[h.UserID], h)
	}
	for id := range r.history {
		sortNewestFirst(r.history[id])
	}
	return r
}

// Resolve attributes userID for the report month. A nil userID is unassigned.
func (r *Resolver) Resolve(userID *uint, year, month int) Attribution {
	if userID == nil {
		return unassigned()
	}
	return resolveSorted(r.profiles[*userID], r.history[*userID], year, month, r.mode)
}

// UserName returns the display name of userID, empty when unknown.
func (r *Resolver) UserName(userID *uint) string {
	if userID == nil {
		return ""
	}
	if u, ok := r.profiles[*userID]; ok {
		return u.DisplayName()
	}
	return ""
}
