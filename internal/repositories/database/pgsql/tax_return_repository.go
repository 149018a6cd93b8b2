package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxReturnRepository struct {
	BaseRepository
}

func newPgxTaxReturnRepository(pool *pgxpool.Pool) portsrepo.TaxReturnRepository {
	return &PgxTaxReturnRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxReturnRepository = (*PgxTaxReturnRepository)(nil)

const selectTaxReturn = `
	SELECT id, company, tax_period, revenue_usd, revenue_lrd, tax_due_usd, tax_due_lrd, filed_date, filed_by
	FROM tax_returns
`

func scanTaxReturn(row pgx.Row) (domain.TaxReturn, error) {
	var tr domain.TaxReturn
	err := row.Scan(
		&tr.ID,
		&tr.Company,
		&tr.TaxPeriod,
		&tr.RevenueUSD,
		&tr.RevenueLRD,
		&tr.TaxDueUSD,
		&tr.TaxDueLRD,
		&tr.FiledDate,
		&tr.FiledBy,
	)
	return tr, err
}

func (r *PgxTaxReturnRepository) Append(ctx context.Context, tr domain.TaxReturn) (domain.TaxReturn, error) {
	query := `
		INSERT INTO tax_returns (company, tax_period, revenue_usd, revenue_lrd, tax_due_usd, tax_due_lrd, filed_date, filed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		tr.Company,
		tr.TaxPeriod,
		tr.RevenueUSD,
		tr.RevenueLRD,
		tr.TaxDueUSD,
		tr.TaxDueLRD,
		tr.FiledDate,
		tr.FiledBy,
	).Scan(&tr.ID)
	if err != nil {
		return domain.TaxReturn{}, fmt.Errorf("failed to insert tax return: %w", err)
	}
	return tr, nil
}

func (r *PgxTaxReturnRepository) FindByID(ctx context.Context, id int64) (domain.TaxReturn, error) {
	return findOne(ctx, r.Pool, "tax return", selectTaxReturn+` WHERE id = $1;`, id, scanTaxReturn)
}

func (r *PgxTaxReturnRepository) List(ctx context.Context) ([]domain.TaxReturn, error) {
	return listAll(ctx, r.Pool, "tax returns", selectTaxReturn+` ORDER BY id DESC;`, scanTaxReturn)
}
