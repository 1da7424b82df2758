package repositories

import (
	"context"

	"mskn-backend/internal/models"
)

type DocumentRepository struct {
	DB DBTX
}

func NewDocumentRepository(db DBTX) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

const documentColumns = `id, name, type, url, property_id, tenant_id, lease_id, uploaded_date, uploaded_by`

func scanDocument(row interface{ Scan(...any) error }) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(&d.ID, &d.Name, &d.Type, &d.URL, &d.PropertyID, &d.TenantID, &d.LeaseID, &d.UploadedDate, &d.UploadedBy)
	if err != nil {
		return nil, mapError(err)
	}
	return d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	query := `
		INSERT INTO documents (id, name, type, url, property_id, tenant_id, lease_id, uploaded_date, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.Exec(ctx, query,
		d.ID, d.Name, d.Type, d.URL, d.PropertyID, d.TenantID, d.LeaseID, d.UploadedDate, d.UploadedBy,
	)
	return mapError(err)
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*models.Document, error) {
	return scanDocument(r.DB.QueryRow(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = $1`, id))
}

func (r *DocumentRepository) List(ctx context.Context, f models.RecordFilter) ([]*models.Document, error) {
	w := recordWhere(f, "property_id", "tenant_id")
	rows, err := r.DB.Query(ctx, `SELECT `+documentColumns+` FROM documents`+w.String()+` ORDER BY uploaded_date DESC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := []*models.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	return documents, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return expectAffected(r.DB.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id))
}
