package repositories

import (
	"context"
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// ReportRepositoryFacade persists generated regulatory reports and their
// submission state.
type ReportRepositoryFacade interface {
	SaveReport(ctx context.Context, report domain.RegulatoryReport) error

	// FindReportByID returns apperrors.ErrNotFound when no record exists.
	FindReportByID(ctx context.Context, reportID string) (*domain.RegulatoryReport, error)

	// ListReports retrieves generated reports, newest first. XML content is
	// included; callers trimming payloads do so at the DTO layer.
	ListReports(ctx context.Context) ([]domain.RegulatoryReport, error)

	// UpdateReportStatus records the outcome of a submission attempt.
	UpdateReportStatus(ctx context.Context, reportID string, status domain.SubmissionStatus, dabReference string, updatedAt time.Time) error
}
