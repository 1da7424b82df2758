package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type LeaseRepository struct {
	DB DBTX
}

func NewLeaseRepository(db DBTX) *LeaseRepository {
	return &LeaseRepository{DB: db}
}

const leaseColumns = `id, property_id, tenant_id, start_date, end_date, monthly_rent, deposit, status, terms,
	signed_date, created_at, updated_at`

func scanLease(row interface{ Scan(...any) error }) (*models.Lease, error) {
	l := &models.Lease{}
	err := row.Scan(
		&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate, &l.MonthlyRent, &l.Deposit,
		&l.Status, &l.Terms, &l.SignedDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return l, nil
}

func (r *LeaseRepository) Create(ctx context.Context, l *models.Lease) error {
	query := `
		INSERT INTO leases (id, property_id, tenant_id, start_date, end_date, monthly_rent, deposit, status, terms,
			signed_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.Exec(ctx, query,
		l.ID, l.PropertyID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit, l.Status, l.Terms,
		l.SignedDate, l.CreatedAt, l.UpdatedAt,
	)
	return mapError(err)
}

func (r *LeaseRepository) Get(ctx context.Context, id string) (*models.Lease, error) {
	return scanLease(r.DB.QueryRow(ctx, `SELECT `+leaseColumns+` FROM leases WHERE id = $1`, id))
}

func (r *LeaseRepository) List(ctx context.Context, f models.RecordFilter) ([]*models.Lease, error) {
	w := recordWhere(f, "property_id", "tenant_id")
	rows, err := r.DB.Query(ctx, `SELECT `+leaseColumns+` FROM leases`+w.String()+` ORDER BY start_date DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leases := []*models.Lease{}
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}

func (r *LeaseRepository) Update(ctx context.Context, l *models.Lease) error {
	query := `
		UPDATE leases SET property_id = $2, tenant_id = $3, start_date = $4, end_date = $5, monthly_rent = $6,
			deposit = $7, status = $8, terms = $9, signed_date = $10, updated_at = $11
		WHERE id = $1
	`
	return expectAffected(r.DB.Exec(ctx, query,
		l.ID, l.PropertyID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent, l.Deposit, l.Status, l.Terms,
		l.SignedDate, l.UpdatedAt,
	))
}

func (r *LeaseRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.DB.Exec(ctx, `DELETE FROM leases WHERE id = $1`, id))
}
