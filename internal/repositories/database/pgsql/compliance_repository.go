package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxComplianceRepository struct {
	BaseRepository
}

func newPgxComplianceRepository(pool *pgxpool.Pool) portsrepo.ComplianceRepository {
	return &PgxComplianceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ComplianceRepository = (*PgxComplianceRepository)(nil)

const selectCompliance = `
	SELECT id, company, regulation, status, findings, recommendations, checked_by, next_review_date, created_at
	FROM compliance
`

func scanCompliance(row pgx.Row) (domain.ComplianceRecord, error) {
	var rec domain.ComplianceRecord
	var status string
	err := row.Scan(
		&rec.ID,
		&rec.Company,
		&rec.Regulation,
		&status,
		&rec.Findings,
		&rec.Recommendations,
		&rec.CheckedBy,
		&rec.NextReviewDate,
		&rec.CreatedAt,
	)
	rec.Status = domain.ComplianceStatus(status)
	return rec, err
}

func (r *PgxComplianceRepository) Append(ctx context.Context, rec domain.ComplianceRecord) (domain.ComplianceRecord, error) {
	query := `
		INSERT INTO compliance (company, regulation, status, findings, recommendations, checked_by, next_review_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.Pool.QueryRow(ctx, query,
		rec.Company,
		rec.Regulation,
		string(rec.Status),
		rec.Findings,
		rec.Recommendations,
		rec.CheckedBy,
		rec.NextReviewDate,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return domain.ComplianceRecord{}, fmt.Errorf("failed to insert compliance record: %w", err)
	}
	return rec, nil
}

func (r *PgxComplianceRepository) FindByID(ctx context.Context, id int64) (domain.ComplianceRecord, error) {
	return findOne(ctx, r.Pool, "compliance record", selectCompliance+` WHERE id = $1;`, id, scanCompliance)
}

func (r *PgxComplianceRepository) List(ctx context.Context) ([]domain.ComplianceRecord, error) {
	return listAll(ctx, r.Pool, "compliance records", selectCompliance+` ORDER BY id DESC;`, scanCompliance)
}
