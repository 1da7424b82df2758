package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type PropertyRepository struct {
	DB DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertyColumns = `id, name, address, city, state, zip_code, type, bedrooms, bathrooms, square_feet,
	rent_amount, status, owner_id, manager_id, description, created_at, updated_at`

func scanProperty(row interface{ Scan(...any) error }) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.Type,
		&p.Bedrooms, &p.Bathrooms, &p.SquareFeet, &p.RentAmount, &p.Status,
		&p.OwnerID, &p.ManagerID, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (id, name, address, city, state, zip_code, type, bedrooms, bathrooms, square_feet,
			rent_amount, status, owner_id, manager_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.DB.Exec(ctx, query,
		p.ID, p.Name, p.Address, p.City, p.State, p.ZipCode, p.Type, p.Bedrooms, p.Bathrooms, p.SquareFeet,
		p.RentAmount, p.Status, p.OwnerID, p.ManagerID, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	return mapError(err)
}

func (r *PropertyRepository) Get(ctx context.Context, id string) (*models.Property, error) {
	return scanProperty(r.DB.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
}

func (r *PropertyRepository) List(ctx context.Context, f models.PropertyFilter) ([]*models.Property, error) {
	w := &where{}
	if f.OwnerID != "" {
		w.add("owner_id = $%d", f.OwnerID)
	}
	if f.ManagerID != "" {
		w.add("manager_id = $%d", f.ManagerID)
	}
	if f.LimitIDs {
		w.add("id = ANY($%d)", nonNil(f.IDIn))
	}

	rows, err := r.DB.Query(ctx, `SELECT `+propertyColumns+` FROM properties`+w.String()+` ORDER BY created_at DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []*models.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// IDsByOwner returns the ids of every property owned by ownerID.
func (r *PropertyRepository) IDsByOwner(ctx context.Context, ownerID string) ([]string, error) {
	rows, err := r.DB.Query(ctx, `SELECT id FROM properties WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	query := `
		UPDATE properties SET name = $2, address = $3, city = $4, state = $5, zip_code = $6, type = $7,
			bedrooms = $8, bathrooms = $9, square_feet = $10, rent_amount = $11, status = $12,
			owner_id = $13, manager_id = $14, description = $15, updated_at = $16
		WHERE id = $1
	`
	return expectAffected(r.DB.Exec(ctx, query,
		p.ID, p.Name, p.Address, p.City, p.State, p.ZipCode, p.Type, p.Bedrooms, p.Bathrooms, p.SquareFeet,
		p.RentAmount, p.Status, p.OwnerID, p.ManagerID, p.Description, p.UpdatedAt,
	))
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.DB.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id))
}
