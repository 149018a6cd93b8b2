package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRiskRepository struct {
	BaseRepository
}

func newPgxRiskRepository(pool *pgxpool.Pool) portsrepo.RiskRepository {
	return &PgxRiskRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RiskRepository = (*PgxRiskRepository)(nil)

const selectRisk = `
	SELECT id, company, risk_type, risk_level, description, mitigation_plan, assessed_by, assessed_date
	FROM risk_assessments
`

func scanRisk(row pgx.Row) (domain.RiskAssessment, error) {
	var ra domain.RiskAssessment
	err := row.Scan(
		&ra.ID,
		&ra.Company,
		&ra.RiskType,
		&ra.RiskLevel,
		&ra.Description,
		&ra.MitigationPlan,
		&ra.AssessedBy,
		&ra.AssessedDate,
	)
	return ra, err
}

func (r *PgxRiskRepository) Append(ctx context.Context, ra domain.RiskAssessment) (domain.RiskAssessment, error) {
	query := `
		INSERT INTO risk_assessments (company, risk_type, risk_level, description, mitigation_plan, assessed_by, assessed_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		ra.Company,
		ra.RiskType,
		ra.RiskLevel,
		ra.Description,
		ra.MitigationPlan,
		ra.AssessedBy,
		ra.AssessedDate,
	).Scan(&ra.ID)
	if err != nil {
		return domain.RiskAssessment{}, fmt.Errorf("failed to insert risk assessment: %w", err)
	}
	return ra, nil
}

func (r *PgxRiskRepository) FindByID(ctx context.Context, id int64) (domain.RiskAssessment, error) {
	return findOne(ctx, r.Pool, "risk assessment", selectRisk+` WHERE id = $1;`, id, scanRisk)
}

func (r *PgxRiskRepository) List(ctx context.Context) ([]domain.RiskAssessment, error) {
	return listAll(ctx, r.Pool, "risk assessments", selectRisk+` ORDER BY id DESC;`, scanRisk)
}
