package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransferPricingRepository struct {
	BaseRepository
}

func newPgxTransferPricingRepository(pool *pgxpool.Pool) portsrepo.TransferPricingRepository {
	return &PgxTransferPricingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferPricingRepository = (*PgxTransferPricingRepository)(nil)

const selectTransferPricing = `
	SELECT id, company, transaction_type, related_party, transaction_value_usd, arm_length_price_usd,
	       adjustment_required, analysis_method, analyst, submitted_date
	FROM transfer_pricing_analyses
`

func scanTransferPricing(row pgx.Row) (domain.TransferPricingAnalysis, error) {
	var a domain.TransferPricingAnalysis
	err := row.Scan(
		&a.ID,
		&a.Company,
		&a.TransactionType,
		&a.RelatedParty,
		&a.TransactionValueUSD,
		&a.ArmLengthPriceUSD,
		&a.AdjustmentRequired,
		&a.AnalysisMethod,
		&a.Analyst,
		&a.SubmittedDate,
	)
	return a, err
}

func (r *PgxTransferPricingRepository) Append(ctx context.Context, a domain.TransferPricingAnalysis) (domain.TransferPricingAnalysis, error) {
	query := `
		INSERT INTO transfer_pricing_analyses (company, transaction_type, related_party, transaction_value_usd,
			arm_length_price_usd, adjustment_required, analysis_method, analyst, submitted_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		a.Company,
		a.TransactionType,
		a.RelatedParty,
		a.TransactionValueUSD,
		a.ArmLengthPriceUSD,
		a.AdjustmentRequired,
		a.AnalysisMethod,
		a.Analyst,
		a.SubmittedDate,
	).Scan(&a.ID)
	if err != nil {
		return domain.TransferPricingAnalysis{}, fmt.Errorf("failed to insert transfer pricing analysis: %w", err)
	}
	return a, nil
}

func (r *PgxTransferPricingRepository) FindByID(ctx context.Context, id int64) (domain.TransferPricingAnalysis, error) {
	return findOne(ctx, r.Pool, "transfer pricing analysis", selectTransferPricing+` WHERE id = $1;`, id, scanTransferPricing)
}

func (r *PgxTransferPricingRepository) List(ctx context.Context) ([]domain.TransferPricingAnalysis, error) {
	return listAll(ctx, r.Pool, "transfer pricing analyses", selectTransferPricing+` ORDER BY id DESC;`, scanTransferPricing)
}
