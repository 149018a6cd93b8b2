package services

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// LedgerSvc is the submit/list/get contract shared by every record ledger.
type LedgerSvc[T any] interface {
	// Submit validates, stamps and appends a record on behalf of actor.
	Submit(ctx context.Context, actor domain.User, record T) (T, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]T, error)

	// Get returns apperrors.ErrNotFound for an unknown id.
	Get(ctx context.Context, id int64) (T, error)
}
