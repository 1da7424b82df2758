package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type PaymentRepository struct {
	DB DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, lease_id, tenant_id, property_id, amount, due_date, paid_date, status, type, method,
	transaction_id, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.LeaseID, &p.TenantID, &p.PropertyID, &p.Amount, &p.DueDate, &p.PaidDate, &p.Status,
		&p.Type, &p.Method, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (id, lease_id, tenant_id, property_id, amount, due_date, paid_date, status, type, method,
			transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.Exec(ctx, query,
		p.ID, p.LeaseID, p.TenantID, p.PropertyID, p.Amount, p.DueDate, p.PaidDate, p.Status, p.Type, p.Method,
		p.TransactionID, p.CreatedAt, p.UpdatedAt,
	)
	return mapError(err)
}

func (r *PaymentRepository) Get(ctx context.Context, id string) (*models.Payment, error) {
	return scanPayment(r.DB.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

func (r *PaymentRepository) List(ctx context.Context, f models.RecordFilter) ([]*models.Payment, error) {
	w := recordWhere(f, "property_id", "tenant_id")
	rows, err := r.DB.Query(ctx, `SELECT `+paymentColumns+` FROM payments`+w.String()+` ORDER BY due_date DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	query := `
		UPDATE payments SET lease_id = $2, tenant_id = $3, property_id = $4, amount = $5, due_date = $6,
			paid_date = $7, status = $8, type = $9, method = $10, transaction_id = $11, updated_at = $12
		WHERE id = $1
	`
	return expectAffected(r.DB.Exec(ctx, query,
		p.ID, p.LeaseID, p.TenantID, p.PropertyID, p.Amount, p.DueDate, p.PaidDate, p.Status, p.Type, p.Method,
		p.TransactionID, p.UpdatedAt,
	))
}
