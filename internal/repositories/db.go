package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"mskn-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrReference  = errors.New("referenced record does not exist")
	ErrOutOfRange = errors.New("numeric value out of range")
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapError translates driver errors into the package sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrReference, pgErr.ConstraintName)
		case "22003":
			return fmt.Errorf("%w: %s", ErrOutOfRange, pgErr.Message)
		}
	}
	return err
}

func expectAffected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type where struct {
	clauses []string
	args    []any
}

// add appends a clause; %d in the clause is replaced by the placeholder number.
func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// recordWhere renders a RecordFilter against tables with property_id and
// tenant_id columns.
func recordWhere(f models.RecordFilter, propertyCol, tenantCol string) *where {
	w := &where{}
	if f.PropertyID != "" {
		w.add(propertyCol+" = $%d", f.PropertyID)
	}
	if f.TenantID != "" {
		w.add(tenantCol+" = $%d", f.TenantID)
	}
	if f.LimitProperties {
		w.add(propertyCol+" = ANY($%d)", nonNil(f.PropertyIn))
	}
	if f.LimitTenants {
		w.add(tenantCol+" = ANY($%d)", nonNil(f.TenantIn))
	}
	return w
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
