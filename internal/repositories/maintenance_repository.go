package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type MaintenanceRepository struct {
	DB DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{DB: db}
}

const maintenanceColumns = `id, property_id, tenant_id, title, description, category, priority, status,
	requested_date, completed_date, assigned_to, estimated_cost, actual_cost, notes, created_at, updated_at`

func scanMaintenance(row interface{ Scan(...any) error }) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{}
	err := row.Scan(
		&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Description, &m.Category, &m.Priority, &m.Status,
		&m.RequestedDate, &m.CompletedDate, &m.AssignedTo, &m.EstimatedCost, &m.ActualCost, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, property_id, tenant_id, title, description, category, priority, status,
			requested_date, completed_date, assigned_to, estimated_cost, actual_cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.DB.Exec(ctx, query,
		m.ID, m.PropertyID, m.TenantID, m.Title, m.Description, m.Category, m.Priority, m.Status,
		m.RequestedDate, m.CompletedDate, m.AssignedTo, m.EstimatedCost, m.ActualCost, m.Notes,
		m.CreatedAt, m.UpdatedAt,
	)
	return mapError(err)
}

func (r *MaintenanceRepository) Get(ctx context.Context, id string) (*models.MaintenanceRequest, error) {
	return scanMaintenance(r.DB.QueryRow(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = $1`, id))
}

func (r *MaintenanceRepository) List(ctx context.Context, f models.RecordFilter) ([]*models.MaintenanceRequest, error) {
	w := recordWhere(f, "property_id", "tenant_id")
	rows, err := r.DB.Query(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests`+w.String()+` ORDER BY requested_date DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []*models.MaintenanceRequest{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests SET title = $2, description = $3, category = $4, priority = $5, status = $6,
			completed_date = $7, assigned_to = $8, estimated_cost = $9, actual_cost = $10, notes = $11,
			updated_at = $12
		WHERE id = $1
	`
	return expectAffected(r.DB.Exec(ctx, query,
		m.ID, m.Title, m.Description, m.Category, m.Priority, m.Status,
		m.CompletedDate, m.AssignedTo, m.EstimatedCost, m.ActualCost, m.Notes, m.UpdatedAt,
	))
}
