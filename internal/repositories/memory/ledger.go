// Package memory provides mutex-guarded in-process repositories used by
// tests and by STORE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
)

// Ledger is an append-only list of T. Id assignment and append happen
// under one lock, so concurrent submitters never share an id.
type Ledger[T any] struct {
	mu      sync.Mutex
	records []T // oldest first
	lastID  int64
	getID   func(T) int64
	setID   func(*T, int64)
}

// NewLedger builds a ledger and appends seed in order.
func NewLedger[T any](getID func(T) int64, setID func(*T, int64), seed ...T) *Ledger[T] {
	l := &Ledger[T]{getID: getID, setID: setID}
	l.appendLocked(seed)
	return l
}

var _ portsrepo.LedgerRepository[struct{}] = (*Ledger[struct{}])(nil)

func (l *Ledger[T]) appendLocked(records []T) []T {
	stored := make([]T, len(records))
	for i, rec := range records {
		l.lastID++
		l.setID(&rec, l.lastID)
		l.records = append(l.records, rec)
		stored[i] = rec
	}
	return stored
}

// Append implements portsrepo.LedgerWriter.
func (l *Ledger[T]) Append(ctx context.Context, record T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked([]T{record})[0], nil
}

// AppendAll stores every record under a single lock.
func (l *Ledger[T]) AppendAll(ctx context.Context, records []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.appendLocked(records), nil
}

// FindByID implements portsrepo.LedgerReader.
func (l *Ledger[T]) FindByID(_ context.Context, id int64) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, rec := range l.records {
		if l.getID(rec) == id {
			return rec, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("record %d: %w", id, apperrors.ErrNotFound)
}

// List implements portsrepo.LedgerReader, newest first.
func (l *Ledger[T]) List(_ context.Context) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.records))
	for i := len(l.records) - 1; i >= 0; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}

// ListBefore returns up to limit records with id below beforeID, newest
// first. beforeID 0 starts from the newest record.
func (l *Ledger[T]) ListBefore(_ context.Context, beforeID int64, limit int) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, min(limit, len(l.records)))
	for i := len(l.records) - 1; i >= 0 && len(out) < limit; i-- {
		if beforeID > 0 && l.getID(l.records[i]) >= beforeID {
			continue
		}
		out = append(out, l.records[i])
	}
	return out, nil
}

// Len returns the number of stored records.
func (l *Ledger[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
