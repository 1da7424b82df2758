package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"mskn-backend/internal/models"
)

func TestRecordWhere(t *testing.T) {
	w := recordWhere(models.RecordFilter{}, "property_id", "tenant_id")
	assert.Equal(t, "", w.String())
	assert.Empty(t, w.args)

	w = recordWhere(models.RecordFilter{
		PropertyID:   "p1",
		LimitTenants: true,
	}, "property_id", "tenant_id")
	assert.Equal(t, " WHERE property_id = $1 AND tenant_id = ANY($2)", w.String())
	assert.Equal(t, []any{"p1", []string{}}, w.args)

	w = recordWhere(models.RecordFilter{
		PropertyIn:      []string{"p1", "p2"},
		LimitProperties: true,
	}, "d.property_id", "d.tenant_id")
	assert.Equal(t, " WHERE d.property_id = ANY($1)", w.String())
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), ErrDuplicate)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23503", ConstraintName: "leases_property_id_fkey"}), ErrReference)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "22003", Message: "numeric field overflow"}), ErrOutOfRange)

	other := errors.New("timeout")
	assert.Equal(t, other, mapError(other))
	assert.NoError(t, mapError(nil))
}

func TestExpectAffected(t *testing.T) {
	assert.ErrorIs(t, expectAffected(pgconn.NewCommandTag("DELETE 0"), nil), ErrNotFound)
	assert.NoError(t, expectAffected(pgconn.NewCommandTag("DELETE 1"), nil))
}
