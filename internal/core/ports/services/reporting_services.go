package services

import (
	"context"
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// ProjectionKind selects which report-ready view of the journal to build.
type ProjectionKind string

const (
	ProjectionExchange   ProjectionKind = "EXCHANGE"
	ProjectionHawala     ProjectionKind = "HAWALA"
	ProjectionExpense    ProjectionKind = "EXPENSE"
	ProjectionSuspicious ProjectionKind = "SUSPICIOUS"
)

// ReportingSvcFacade reshapes journal and customer data into report-ready
// views and regulatory documents. It consumes the journal but never mutates
// it.
type ReportingSvcFacade interface {
	// Project filters non-deleted entries into the requested view. from/to
	// are optional inclusive bounds on the entry date.
	Project(ctx context.Context, kind ProjectionKind, from, to *time.Time) ([]domain.JournalEntry, error)

	// GenerateDAB builds the central-bank XML report over the current journal
	// snapshot and persists it in DRAFT state.
	GenerateDAB(ctx context.Context, reportType domain.ReportType, period, branchCode, actingUserID string) (*domain.RegulatoryReport, error)

	// SubmitDAB submits a draft report to the regulator portal and records
	// the assigned reference.
	SubmitDAB(ctx context.Context, reportID string) (*domain.RegulatoryReport, error)

	// History lists generated reports, newest first.
	History(ctx context.Context) ([]domain.RegulatoryReport, error)

	// ExportXLSX renders the journal window as an XLSX workbook.
	ExportXLSX(ctx context.Context, from, to *time.Time) ([]byte, error)

	// ExportCSV renders the journal window as CSV bytes.
	ExportCSV(ctx context.Context, from, to *time.Time) ([]byte, error)
}
