package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mskn-backend/internal/auth"
	"mskn-backend/internal/logger"
	"mskn-backend/internal/models"
	"mskn-backend/internal/repositories"
	"mskn-backend/internal/services"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Stores are the repositories the seeder writes to. Both the pgx and the
// in-memory repositories satisfy them.
type Stores struct {
	Users       services.UserStore
	Properties  services.PropertyStore
	Tenants     services.TenantStore
	Leases      services.LeaseStore
	Payments    services.PaymentStore
	Maintenance services.MaintenanceStore
}

// Seed inserts demo accounts and a small portfolio. It does nothing when the
// demo manager already exists.
func Seed(ctx context.Context, s Stores) error {
	log := logger.For("Seed")

	if _, err := s.Users.GetByEmail(ctx, "manager@mskn.com"); err == nil {
		log.Info("Demo data already present, skipping")
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("check existing users: %w", err)
	}

	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }

	manager := demoUser("manager@mskn.com", "John Manager", models.RoleManager, "555-0101", hash, now)
	tenantUser := demoUser("tenant@mskn.com", "Jane Tenant", models.RoleTenant, "555-0102", hash, now)
	owner := demoUser("owner@mskn.com", "Bob Owner", models.RoleOwner, "555-0103", hash, now)
	for _, u := range []*models.User{manager, tenantUser, owner} {
		if err := s.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}

	sunset := &models.Property{
		ID: uuid.NewString(), Name: "Sunset Apartments", Address: "123 Main St", City: "Springfield",
		State: "IL", ZipCode: "62701", Type: "apartment", Bedrooms: num(2), Bathrooms: num(1),
		SquareFeet: num(1200), RentAmount: models.NewMoney(1200), Status: models.PropertyOccupied,
		OwnerID: owner.ID, ManagerID: str(manager.ID),
		Description: str("Beautiful 2-bedroom apartment in downtown area"), CreatedAt: now, UpdatedAt: now,
	}
	oakwood := &models.Property{
		ID: uuid.NewString(), Name: "Oakwood House", Address: "456 Oak Ave", City: "Springfield",
		State: "IL", ZipCode: "62702", Type: "house", Bedrooms: num(3), Bathrooms: num(2),
		SquareFeet: num(1800), RentAmount: models.NewMoney(1800), Status: models.PropertyAvailable,
		OwnerID: owner.ID, ManagerID: str(manager.ID),
		Description: str("Spacious 3-bedroom house with backyard"), CreatedAt: now, UpdatedAt: now,
	}
	for _, p := range []*models.Property{sunset, oakwood} {
		if err := s.Properties.Create(ctx, p); err != nil {
			return fmt.Errorf("create property %s: %w", p.Name, err)
		}
	}

	tenant := &models.Tenant{
		ID: uuid.NewString(), UserID: tenantUser.ID, PropertyID: sunset.ID,
		EmergencyContactName: str("John Doe"), EmergencyContactPhone: str("555-9999"),
		EmergencyContactRelationship: str("Parent"),
		MoveInDate: day("2024-01-01"), Status: models.TenantActive, CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Tenants.Create(ctx, tenant); err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	lease := &models.Lease{
		ID: uuid.NewString(), PropertyID: sunset.ID, TenantID: tenant.ID,
		StartDate: day("2024-01-01"), EndDate: day("2024-12-31"),
		MonthlyRent: models.NewMoney(1200), Deposit: models.NewMoney(2400),
		Status: models.LeaseActive, SignedDate: day("2023-12-15"), CreatedAt: now, UpdatedAt: now,
	}
	if err := s.Leases.Create(ctx, lease); err != nil {
		return fmt.Errorf("create lease: %w", err)
	}
	tenant.LeaseID = &lease.ID
	tenant.UpdatedAt = now
	if err := s.Tenants.Update(ctx, tenant); err != nil {
		return fmt.Errorf("link lease: %w", err)
	}

	paid := day("2024-01-28")
	method := models.PaymentMethod("bank_transfer")
	payments := []*models.Payment{
		{
			ID: uuid.NewString(), LeaseID: lease.ID, TenantID: tenant.ID, PropertyID: sunset.ID,
			Amount: models.NewMoney(1200), DueDate: day("2024-02-01"), PaidDate: &paid,
			Status: models.PaymentPaid, Type: models.PaymentRent, Method: &method, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), LeaseID: lease.ID, TenantID: tenant.ID, PropertyID: sunset.ID,
			Amount: models.NewMoney(1200), DueDate: day("2024-03-01"),
			Status: models.PaymentPending, Type: models.PaymentRent, CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, p := range payments {
		if err := s.Payments.Create(ctx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
	}

	requests := []*models.MaintenanceRequest{
		{
			ID: uuid.NewString(), PropertyID: sunset.ID, TenantID: tenant.ID, Title: "Leaky Faucet",
			Description: "The kitchen faucet has been leaking for the past week", Category: "plumbing",
			Priority: models.PriorityMedium, Status: models.MaintenancePending,
			RequestedDate: day("2024-02-10"), CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), PropertyID: sunset.ID, TenantID: tenant.ID, Title: "AC Not Working",
			Description: "Air conditioning unit stopped working in the living room", Category: "hvac",
			Priority: "high", Status: models.MaintenanceInProgress,
			RequestedDate: day("2024-02-05"), AssignedTo: str(manager.ID), CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, m := range requests {
		if err := s.Maintenance.Create(ctx, m); err != nil {
			return fmt.Errorf("create maintenance request: %w", err)
		}
	}

	log.WithField("users", 3).WithField("properties", 2).Info("Demo data seeded")
	return nil
}

func demoUser(email, name string, role models.Role, phone, hash string, now time.Time) *models.User {
	return &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		Phone:        &phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
