package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGSTCalculationRepository struct {
	BaseRepository
}

func newPgxGSTCalculationRepository(pool *pgxpool.Pool) portsrepo.GSTCalculationRepository {
	return &PgxGSTCalculationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GSTCalculationRepository = (*PgxGSTCalculationRepository)(nil)

const selectGSTCalculation = `
	SELECT id, company_name, transaction_type, resource_type, item_category, gross_amount, gst_rate,
	       gst_amount, net_amount, total_amount, calculation_date, calculated_by, notes
	FROM gst_calculations
`

const insertGSTCalculation = `
	INSERT INTO gst_calculations (company_name, transaction_type, resource_type, item_category, gross_amount,
		gst_rate, gst_amount, net_amount, total_amount, calculation_date, calculated_by, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	RETURNING id;
`

func scanGSTCalculation(row pgx.Row) (domain.GSTCalculation, error) {
	var g domain.GSTCalculation
	var mode string
	err := row.Scan(
		&g.ID,
		&g.CompanyName,
		&mode,
		&g.ResourceType,
		&g.ItemCategory,
		&g.GrossAmount,
		&g.GSTRate,
		&g.GSTAmount,
		&g.NetAmount,
		&g.TotalAmount,
		&g.CalculationDate,
		&g.CalculatedBy,
		&g.Notes,
	)
	g.TransactionType = domain.GSTMode(mode)
	return g, err
}

func gstArgs(g domain.GSTCalculation) []any {
	return []any{
		g.CompanyName,
		string(g.TransactionType),
		g.ResourceType,
		g.ItemCategory,
		g.GrossAmount,
		g.GSTRate,
		g.GSTAmount,
		g.NetAmount,
		g.TotalAmount,
		g.CalculationDate,
		g.CalculatedBy,
		g.Notes,
	}
}

func (r *PgxGSTCalculationRepository) Append(ctx context.Context, g domain.GSTCalculation) (domain.GSTCalculation, error) {
	if err := r.Pool.QueryRow(ctx, insertGSTCalculation, gstArgs(g)...).Scan(&g.ID); err != nil {
		return domain.GSTCalculation{}, fmt.Errorf("failed to insert gst calculation: %w", err)
	}
	return g, nil
}

// AppendBatch inserts every calculation in one transaction.
func (r *PgxGSTCalculationRepository) AppendBatch(ctx context.Context, records []domain.GSTCalculation) (stored []domain.GSTCalculation, err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	stored = make([]domain.GSTCalculation, len(records))
	for i, g := range records {
		if err = tx.QueryRow(ctx, insertGSTCalculation, gstArgs(g)...).Scan(&g.ID); err != nil {
			return nil, fmt.Errorf("failed to insert gst calculation %d of batch: %w", i, err)
		}
		stored[i] = g
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *PgxGSTCalculationRepository) FindByID(ctx context.Context, id int64) (domain.GSTCalculation, error) {
	return findOne(ctx, r.Pool, "gst calculation", selectGSTCalculation+` WHERE id = $1;`, id, scanGSTCalculation)
}

func (r *PgxGSTCalculationRepository) List(ctx context.Context) ([]domain.GSTCalculation, error) {
	return listAll(ctx, r.Pool, "gst calculations", selectGSTCalculation+` ORDER BY id DESC;`, scanGSTCalculation)
}

// ListPage pages by id so concurrent inserts never shift a page.
func (r *PgxGSTCalculationRepository) ListPage(ctx context.Context, beforeID int64, limit int) ([]domain.GSTCalculation, error) {
	query := selectGSTCalculation + ` WHERE ($1::bigint = 0 OR id < $1) ORDER BY id DESC LIMIT $2;`
	return listAll(ctx, r.Pool, "gst calculations", query, scanGSTCalculation, beforeID, limit)
}
