package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/models"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func payment(id, propertyID string, amount float64, status models.PaymentStatus, typ models.PaymentType, due time.Time) *models.Payment {
	return &models.Payment{
		ID:         id,
		PropertyID: propertyID,
		Amount:     models.NewMoney(amount),
		Status:     status,
		Type:       typ,
		DueDate:    due,
	}
}

func repair(propertyID string, cost *models.Money) *models.MaintenanceRequest {
	return &models.MaintenanceRequest{PropertyID: propertyID, ActualCost: cost}
}

func money(v float64) *models.Money {
	m := models.NewMoney(v)
	return &m
}

func TestBuildPropertyReport(t *testing.T) {
	payments := []*models.Payment{
		payment("a", "p1", 1000, models.PaymentPaid, models.PaymentRent, now.AddDate(0, 0, -5)),
		payment("b", "p1", 500, models.PaymentPaid, models.PaymentFee, now.AddDate(0, 0, -5)),
		payment("c", "p1", 1000, models.PaymentPending, models.PaymentRent, now.AddDate(0, 0, -5)),
		payment("d", "p2", 9000, models.PaymentPaid, models.PaymentRent, now.AddDate(0, 0, -5)),
	}
	maintenance := []*models.MaintenanceRequest{
		repair("p1", nil),
		repair("p1", money(250)),
		repair("p2", money(4000)),
	}

	r := Build(PropertyScope("p1"), "", payments, maintenance, now)

	assert.Equal(t, "report_p1_all", r.ID)
	assert.Equal(t, "p1", r.PropertyID)
	assert.Empty(t, r.OwnerID)
	assert.Equal(t, PeriodAll, r.Period)
	assert.InDelta(t, 1500, r.TotalIncome, 0.001)
	assert.InDelta(t, 1000, r.RentCollected, 0.001)
	assert.InDelta(t, 250, r.Expenses.Maintenance, 0.001)
	assert.InDelta(t, 75, r.Expenses.Utilities, 0.001)
	assert.InDelta(t, 150, r.Expenses.Taxes, 0.001)
	assert.InDelta(t, 45, r.Expenses.Insurance, 0.001)
	assert.InDelta(t, 30, r.Expenses.Other, 0.001)
	assert.InDelta(t, 250+0.2*1500, r.TotalExpenses, 0.001)
	assert.InDelta(t, r.TotalIncome-r.TotalExpenses, r.NetIncome, 0.001)
	assert.Equal(t, now, r.GeneratedDate)
}

func TestBuildOwnerReport(t *testing.T) {
	payments := []*models.Payment{
		payment("a", "p1", 1000, models.PaymentPaid, models.PaymentRent, now),
		payment("b", "p2", 800, models.PaymentPaid, models.PaymentRent, now),
		payment("c", "p3", 700, models.PaymentPaid, models.PaymentRent, now),
	}

	r := Build(OwnerScope("owner-1", []string{"p1", "p2"}), PeriodYear, payments, nil, now)

	assert.Equal(t, "report_owner_owner-1_year", r.ID)
	assert.Equal(t, "owner-1", r.OwnerID)
	assert.Empty(t, r.PropertyID)
	assert.InDelta(t, 1800, r.TotalIncome, 0.001)
}

func TestBuildOwnerWithoutPropertiesIsEmpty(t *testing.T) {
	payments := []*models.Payment{payment("a", "p1", 1000, models.PaymentPaid, models.PaymentRent, now)}

	r := Build(OwnerScope("owner-1", nil), "", payments, nil, now)

	assert.Zero(t, r.TotalIncome)
	assert.Zero(t, r.TotalExpenses)
	assert.Zero(t, r.NetIncome)
}

func TestPeriodFilterIsSubsetOfUnfiltered(t *testing.T) {
	payments := []*models.Payment{
		payment("recent", "p1", 100, models.PaymentPaid, models.PaymentRent, now.AddDate(0, 0, -10)),
		payment("quarter", "p1", 200, models.PaymentPaid, models.PaymentRent, now.AddDate(0, -2, 0)),
		payment("old", "p1", 400, models.PaymentPaid, models.PaymentRent, now.AddDate(0, -6, 0)),
		payment("ancient", "p1", 800, models.PaymentPaid, models.PaymentRent, now.AddDate(-2, 0, 0)),
	}
	scope := PropertyScope("p1")

	all := Build(scope, "", payments, nil, now)
	year := Build(scope, PeriodYear, payments, nil, now)
	quarter := Build(scope, PeriodQuarter, payments, nil, now)
	month := Build(scope, PeriodMonth, payments, nil, now)

	assert.InDelta(t, 1500, all.TotalIncome, 0.001)
	assert.InDelta(t, 700, year.TotalIncome, 0.001)
	assert.InDelta(t, 300, quarter.TotalIncome, 0.001)
	assert.InDelta(t, 100, month.TotalIncome, 0.001)
	assert.LessOrEqual(t, year.TotalIncome, all.TotalIncome)
}

func TestUnknownPeriodIsEchoedAndUnfiltered(t *testing.T) {
	payments := []*models.Payment{
		payment("ancient", "p1", 800, models.PaymentPaid, models.PaymentRent, now.AddDate(-5, 0, 0)),
	}

	r := Build(PropertyScope("p1"), "decade", payments, nil, now)

	assert.Equal(t, "decade", r.Period)
	assert.Equal(t, "report_p1_decade", r.ID)
	assert.InDelta(t, 800, r.TotalIncome, 0.001)
}

func TestMaintenanceIsNotPeriodFiltered(t *testing.T) {
	m := repair("p1", money(120))
	m.RequestedDate = now.AddDate(-3, 0, 0)

	r := Build(PropertyScope("p1"), PeriodMonth, nil, []*models.MaintenanceRequest{m}, now)

	assert.InDelta(t, 120, r.Expenses.Maintenance, 0.001)
	assert.InDelta(t, 120, r.TotalExpenses, 0.001)
	assert.InDelta(t, -120, r.NetIncome, 0.001)
}

func TestMonthWindowRollsOverAtMonthEnd(t *testing.T) {
	endOfMarch := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	start, ok := PeriodStart(PeriodMonth, endOfMarch)
	require.True(t, ok)
	// February 31st normalizes to March 2nd.
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), start)

	payments := []*models.Payment{
		payment("before", "p1", 10, models.PaymentPaid, models.PaymentRent, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		payment("edge", "p1", 20, models.PaymentPaid, models.PaymentRent, start),
	}
	r := Build(PropertyScope("p1"), PeriodMonth, payments, nil, endOfMarch)
	assert.InDelta(t, 20, r.TotalIncome, 0.001)
}

func TestBuildIsDeterministic(t *testing.T) {
	payments := []*models.Payment{payment("a", "p1", 1000, models.PaymentPaid, models.PaymentRent, now)}
	maintenance := []*models.MaintenanceRequest{repair("p1", money(99.99))}

	first := Build(PropertyScope("p1"), PeriodMonth, payments, maintenance, now)
	second := Build(PropertyScope("p1"), PeriodMonth, payments, maintenance, now)

	assert.Equal(t, first, second)
}

func TestRenderCSVAndPDF(t *testing.T) {
	payments := []*models.Payment{payment("a", "p1", 1000, models.PaymentPaid, models.PaymentRent, now)}
	r := Build(PropertyScope("p1"), PeriodMonth, payments, nil, now)

	csvData, err := r.CSV()
	require.NoError(t, err)
	out := string(csvData)
	assert.True(t, strings.HasPrefix(out, "report,report_p1_month\n"))
	assert.Contains(t, out, "Total income,1000.00\n")
	assert.Contains(t, out, "Net income,800.00\n")

	pdfData, err := r.PDF()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdfData), "%PDF-"))
}
