package services

import (
	"context"
	"errors"
	"fmt"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/repositories"
)

const msgAccessDenied = "Access denied"

// lookupError maps a store error from a single-row read.
func lookupError(err error, notFound string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound(notFound)
	}
	return apperr.Internal(err)
}

// writeError maps a store error from a write. A row deleted between the read
// and the write surfaces as notFound.
func writeError(err error, notFound, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperr.NotFound(notFound)
	}
	if errors.Is(err, repositories.ErrReference) {
		return apperr.BadRequest("Referenced record does not exist")
	}
	if errors.Is(err, repositories.ErrOutOfRange) {
		return apperr.BadRequest("Amount is out of range")
	}
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

func resolve(ctx context.Context, scoper Scoper, id access.Identity) (access.Scope, error) {
	scope, err := scoper.Resolve(ctx, id)
	if err != nil {
		return scope, apperr.Internal(err)
	}
	return scope, nil
}

func denied() error {
	return apperr.Forbidden(msgAccessDenied)
}
