package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
)

func validProperty() *models.CreatePropertyRequest {
	return &models.CreatePropertyRequest{
		Name:       "Maple Court",
		Address:    "12 Maple St",
		City:       "Springfield",
		State:      "IL",
		ZipCode:    "62704",
		Type:       "apartment",
		RentAmount: money(1450),
		OwnerID:    "owner-1",
	}
}

func money(v float64) *models.Money {
	m := models.NewMoney(v)
	return &m
}

func issuesOf(t *testing.T, err error) []Issue {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Validation error", appErr.Message)
	out, ok := appErr.Details.([]Issue)
	require.True(t, ok)
	return out
}

func fields(issues []Issue) []string {
	var out []string
	for _, i := range issues {
		out = append(out, i.Field)
	}
	return out
}

func TestValidPropertyPasses(t *testing.T) {
	assert.NoError(t, Struct(validProperty()))

	p := validProperty()
	p.ZipCode = "62704-1234"
	assert.NoError(t, Struct(p))
}

func TestZipCode(t *testing.T) {
	for _, zip := range []string{"6270", "62704-12", "abcde", "62704 1234"} {
		p := validProperty()
		p.ZipCode = zip
		got := issuesOf(t, Struct(p))
		assert.Equal(t, []string{"zipCode"}, fields(got), zip)
		assert.Equal(t, "validation_zipcode", got[0].Code)
	}
}

func TestNegativeMoneyRejected(t *testing.T) {
	p := validProperty()
	p.RentAmount = money(-1)

	got := issuesOf(t, Struct(p))
	assert.Equal(t, []string{"rentAmount"}, fields(got))
	assert.Equal(t, "Field 'rentAmount' must be at least 0", got[0].Message)
}

func TestMissingMoneyIsRequiredButZeroIsAllowed(t *testing.T) {
	p := validProperty()
	p.RentAmount = nil
	got := issuesOf(t, Struct(p))
	assert.Equal(t, []string{"rentAmount"}, fields(got))
	assert.Equal(t, "validation_required", got[0].Code)

	p.RentAmount = money(0)
	assert.NoError(t, Struct(p))

	payment := &models.CreatePaymentRequest{
		LeaseID:    "l1",
		TenantID:   "t1",
		PropertyID: "p1",
		DueDate:    &models.Timestamp{},
		Type:       models.PaymentRent,
	}
	got = issuesOf(t, Struct(payment))
	assert.Equal(t, []string{"amount"}, fields(got))

	lease := &models.CreateLeaseRequest{
		PropertyID:  "p1",
		TenantID:    "t1",
		StartDate:   &models.Timestamp{},
		EndDate:     &models.Timestamp{},
		SignedDate:  &models.Timestamp{},
		MonthlyRent: money(900),
	}
	got = issuesOf(t, Struct(lease))
	assert.Equal(t, []string{"deposit"}, fields(got))
}

func TestMoneyAboveColumnPrecisionRejected(t *testing.T) {
	p := validProperty()
	p.RentAmount = money(1e9)
	got := issuesOf(t, Struct(p))
	assert.Equal(t, []string{"rentAmount"}, fields(got))
	assert.Equal(t, "Field 'rentAmount' must not exceed 99999999.99", got[0].Message)

	p.RentAmount = money(99999999.99)
	assert.NoError(t, Struct(p))

	cost := money(2e9)
	got = issuesOf(t, Struct(&models.CompleteMaintenanceRequest{ActualCost: cost}))
	assert.Equal(t, []string{"actualCost"}, fields(got))
}

func TestRegisterRules(t *testing.T) {
	req := &models.RegisterRequest{Email: "not-an-email", Password: "123", Name: "A", Role: "landlord"}

	got := issuesOf(t, Struct(req))
	assert.ElementsMatch(t, []string{"email", "password", "name", "role"}, fields(got))
}

func TestMaintenanceDescriptionLength(t *testing.T) {
	req := &models.CreateMaintenanceRequest{
		PropertyID:  "p1",
		TenantID:    "t1",
		Title:       "Leak",
		Description: "drips",
		Category:    "plumbing",
	}
	got := issuesOf(t, Struct(req))
	assert.Equal(t, []string{"description"}, fields(got))
}

func TestOptionalUpdateFieldsSkipWhenAbsent(t *testing.T) {
	assert.NoError(t, Struct(&models.UpdatePropertyRequest{}))

	bad := "1"
	got := issuesOf(t, Struct(&models.UpdatePropertyRequest{State: &bad}))
	assert.Equal(t, []string{"state"}, fields(got))
}
