// Package reports computes income and expense summaries for a single property
// or an owner's whole portfolio. Build is pure; callers load the rows.
package reports

import (
	"fmt"
	"slices"
	"time"

	"mskn-backend/internal/models"
)

const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodAll     = "all"
)

// Fixed shares of total income. The breakdown is informational only;
// TotalExpenses uses operatingShare.
const (
	utilitiesShare = 0.05
	taxesShare     = 0.10
	insuranceShare = 0.03
	otherShare     = 0.02
	operatingShare = 0.20
)

// Scope selects the rows a report covers: one property, or every property
// in PropertyIDs on behalf of OwnerID.
type Scope struct {
	PropertyID  string
	OwnerID     string
	PropertyIDs []string
}

func PropertyScope(propertyID string) Scope {
	return Scope{PropertyID: propertyID}
}

func OwnerScope(ownerID string, propertyIDs []string) Scope {
	return Scope{OwnerID: ownerID, PropertyIDs: propertyIDs}
}

func (s Scope) IsOwner() bool {
	return s.OwnerID != ""
}

func (s Scope) covers(propertyID string) bool {
	if s.IsOwner() {
		return slices.Contains(s.PropertyIDs, propertyID)
	}
	return propertyID == s.PropertyID
}

type Expenses struct {
	Maintenance float64 `json:"maintenance"`
	Utilities   float64 `json:"utilities"`
	Taxes       float64 `json:"taxes"`
	Insurance   float64 `json:"insurance"`
	Other       float64 `json:"other"`
}

type Report struct {
	ID            string    `json:"id"`
	PropertyID    string    `json:"propertyId,omitempty"`
	OwnerID       string    `json:"ownerId,omitempty"`
	Period        string    `json:"period"`
	TotalIncome   float64   `json:"totalIncome"`
	TotalExpenses float64   `json:"totalExpenses"`
	NetIncome     float64   `json:"netIncome"`
	RentCollected float64   `json:"rentCollected"`
	Expenses      Expenses  `json:"expenses"`
	GeneratedDate time.Time `json:"generatedDate"`
}

// PeriodStart returns the earliest due date a period keeps. ok is false for
// an empty or unrecognized period, which applies no date filter.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	switch period {
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodQuarter:
		return now.AddDate(0, -3, 0), true
	case PeriodYear:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// Build computes a report over the given rows. Rows outside the scope are
// ignored, so callers may pass a superset. Maintenance costs are not period
// filtered.
func Build(scope Scope, period string, payments []*models.Payment, maintenance []*models.MaintenanceRequest, now time.Time) *Report {
	if period == "" {
		period = PeriodAll
	}
	start, limited := PeriodStart(period, now)

	var income, rent float64
	for _, p := range payments {
		if !scope.covers(p.PropertyID) {
			continue
		}
		if limited && p.DueDate.Before(start) {
			continue
		}
		if p.Status != models.PaymentPaid {
			continue
		}
		amount := p.Amount.Float64()
		income += amount
		if p.Type == models.PaymentRent {
			rent += amount
		}
	}

	var maint float64
	for _, m := range maintenance {
		if !scope.covers(m.PropertyID) || m.ActualCost == nil {
			continue
		}
		maint += m.ActualCost.Float64()
	}

	expenses := maint + income*operatingShare

	report := &Report{
		Period:        period,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income - expenses,
		RentCollected: rent,
		Expenses: Expenses{
			Maintenance: maint,
			Utilities:   income * utilitiesShare,
			Taxes:       income * taxesShare,
			Insurance:   income * insuranceShare,
			Other:       income * otherShare,
		},
		GeneratedDate: now,
	}
	if scope.IsOwner() {
		report.ID = fmt.Sprintf("report_owner_%s_%s", scope.OwnerID, period)
		report.OwnerID = scope.OwnerID
	} else {
		report.ID = fmt.Sprintf("report_%s_%s", scope.PropertyID, period)
		report.PropertyID = scope.PropertyID
	}
	return report
}
