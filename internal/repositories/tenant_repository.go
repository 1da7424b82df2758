package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type TenantRepository struct {
	DB DBTX
}

func NewTenantRepository(db DBTX) *TenantRepository {
	return &TenantRepository{DB: db}
}

const tenantColumns = `id, user_id, property_id, lease_id, emergency_contact_name, emergency_contact_phone,
	emergency_contact_relationship, move_in_date, move_out_date, status, created_at, updated_at`

func scanTenant(row interface{ Scan(...any) error }) (*models.Tenant, error) {
	t := &models.Tenant{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.PropertyID, &t.LeaseID, &t.EmergencyContactName, &t.EmergencyContactPhone,
		&t.EmergencyContactRelationship, &t.MoveInDate, &t.MoveOutDate, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return t, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *models.Tenant) error {
	query := `
		INSERT INTO tenants (id, user_id, property_id, lease_id, emergency_contact_name, emergency_contact_phone,
			emergency_contact_relationship, move_in_date, move_out_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.Exec(ctx, query,
		t.ID, t.UserID, t.PropertyID, t.LeaseID, t.EmergencyContactName, t.EmergencyContactPhone,
		t.EmergencyContactRelationship, t.MoveInDate, t.MoveOutDate, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	return mapError(err)
}

func (r *TenantRepository) Get(ctx context.Context, id string) (*models.Tenant, error) {
	return scanTenant(r.DB.QueryRow(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
}

// List applies f with the profile's own id standing in for tenant_id.
func (r *TenantRepository) List(ctx context.Context, f models.RecordFilter) ([]*models.Tenant, error) {
	w := recordWhere(f, "property_id", "id")
	return r.query(ctx, `SELECT `+tenantColumns+` FROM tenants`+w.String()+` ORDER BY created_at DESC`, w.args...)
}

func (r *TenantRepository) ListByUser(ctx context.Context, userID string) ([]*models.Tenant, error) {
	return r.query(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE user_id = $1`, userID)
}

func (r *TenantRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Tenant, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := []*models.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *TenantRepository) Update(ctx context.Context, t *models.Tenant) error {
	query := `
		UPDATE tenants SET user_id = $2, property_id = $3, lease_id = $4, emergency_contact_name = $5,
			emergency_contact_phone = $6, emergency_contact_relationship = $7, move_in_date = $8,
			move_out_date = $9, status = $10, updated_at = $11
		WHERE id = $1
	`
	return expectAffected(r.DB.Exec(ctx, query,
		t.ID, t.UserID, t.PropertyID, t.LeaseID, t.EmergencyContactName, t.EmergencyContactPhone,
		t.EmergencyContactRelationship, t.MoveInDate, t.MoveOutDate, t.Status, t.UpdatedAt,
	))
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.DB.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id))
}
