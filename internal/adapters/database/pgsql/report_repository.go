package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

const reportColumns = `report_id, report_type, period, branch_code, status, xml_content,
	dab_reference, total_transactions, total_volume, suspicious_count, generated_at, generated_by`

type PgxReportRepository struct {
	pool *pgxpool.Pool
}

// NewPgxReportRepository creates a new repository for regulatory reports.
func NewPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{pool: pool}
}

var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

func scanReport(row pgx.Row) (*domain.RegulatoryReport, error) {
	var rep domain.RegulatoryReport
	err := row.Scan(
		&rep.ReportID,
		&rep.Type,
		&rep.Period,
		&rep.BranchCode,
		&rep.Status,
		&rep.XMLContent,
		&rep.DABReference,
		&rep.TotalTransactions,
		&rep.TotalVolume,
		&rep.SuspiciousCount,
		&rep.GeneratedAt,
		&rep.GeneratedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.RegulatoryReport) error {
	query := `
		INSERT INTO regulatory_reports (report_id, report_type, period, branch_code, status, xml_content,
			dab_reference, total_transactions, total_volume, suspicious_count, generated_at, generated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		report.ReportID,
		report.Type,
		report.Period,
		report.BranchCode,
		report.Status,
		report.XMLContent,
		report.DABReference,
		report.TotalTransactions,
		report.TotalVolume,
		report.SuspiciousCount,
		report.GeneratedAt,
		report.GeneratedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert regulatory report %s: %w", report.ReportID, err)
	}
	return nil
}

func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.RegulatoryReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM regulatory_reports WHERE report_id = $1;`, reportColumns)
	report, err := scanReport(r.pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find regulatory report by ID %s: %w", reportID, err)
	}
	return report, nil
}

func (r *PgxReportRepository) ListReports(ctx context.Context) ([]domain.RegulatoryReport, error) {
	query := fmt.Sprintf(`SELECT %s FROM regulatory_reports ORDER BY generated_at DESC;`, reportColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query regulatory reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.RegulatoryReport{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan regulatory report row: %w", err)
		}
		reports = append(reports, *rep)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating regulatory report rows: %w", rows.Err())
	}
	return reports, nil
}

func (r *PgxReportRepository) UpdateReportStatus(ctx context.Context, reportID string, status domain.SubmissionStatus, dabReference string, updatedAt time.Time) error {
	query := `
		UPDATE regulatory_reports
		SET status = $2, dab_reference = $3, submitted_at = $4
		WHERE report_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, reportID, status, dabReference, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update regulatory report %s: %w", reportID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
