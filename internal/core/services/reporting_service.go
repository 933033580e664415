package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrUnknownProjection = errors.New("unknown projection kind")
	ErrReportNotDraft    = errors.New("report is not in a submittable state")
)

// dabNamespace is the central bank's electronic monitoring system schema.
const dabNamespace = "http://dab.gov.af/ems/v2"

// dabReport is the XML document submitted to the regulator. The structure
// mirrors the EMS v2 filing layout: a header identifying the licensee and
// period, followed by one record per transaction.
type dabReport struct {
	XMLName xml.Name  `xml:"EMSReport"`
	Xmlns   string    `xml:"xmlns,attr"`
	Header  dabHeader `xml:"Header"`
	Records []dabTxn  `xml:"Transactions>Transaction"`
}

type dabHeader struct {
	ReportType   string `xml:"ReportType"`
	Period       string `xml:"Period"`
	LicenseNo    string `xml:"LicenseNumber"`
	ProviderName string `xml:"ProviderName"`
	BranchCode   string `xml:"BranchCode"`
	GeneratedAt  string `xml:"GeneratedAt"`
	RecordCount  int    `xml:"RecordCount"`
}

type dabTxn struct {
	EntryID      string `xml:"EntryID"`
	Date         string `xml:"Date"`
	Category     string `xml:"Category"`
	Direction    string `xml:"Direction"`
	Amount       string `xml:"Amount"`
	Currency     string `xml:"Currency"`
	Rate         string `xml:"Rate,omitempty"`
	CustomerName string `xml:"CustomerName,omitempty"`
	NationalID   string `xml:"CustomerNationalID,omitempty"`
	AgentName    string `xml:"AgentName,omitempty"`
	Suspicious   bool   `xml:"Suspicious"`
	RiskScore    *int32 `xml:"RiskScore,omitempty"`
	Reversal     bool   `xml:"Reversal"`
}

// reportThreshold selects entries for the cash threshold report.
var reportThreshold = decimal.NewFromInt(10000)

// reportingService reshapes journal and customer data into report views and
// regulatory filings. It reads the journal but never writes to it.
type reportingService struct {
	journalRepo  portsrepo.JournalReader
	customerRepo portsrepo.CustomerReader
	reportRepo   portsrepo.ReportRepositoryFacade
	configSvc    portssvc.ConfigSvcFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	journalRepo portsrepo.JournalReader,
	customerRepo portsrepo.CustomerReader,
	reportRepo portsrepo.ReportRepositoryFacade,
	configSvc portssvc.ConfigSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		journalRepo:  journalRepo,
		customerRepo: customerRepo,
		reportRepo:   reportRepo,
		configSvc:    configSvc,
		auditSvc:     auditSvc,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Project filters non-deleted entries into the requested report view.
func (s *reportingService) Project(ctx context.Context, kind portssvc.ProjectionKind, from, to *time.Time) ([]domain.JournalEntry, error) {
	var (
		entries []domain.JournalEntry
		err     error
	)
	switch kind {
	case portssvc.ProjectionExchange:
		entries, err = s.journalRepo.ListEntriesByCategories(ctx,
			[]domain.EntryCategory{domain.ExchangeBuy, domain.ExchangeSell}, from, to)
	case portssvc.ProjectionHawala:
		entries, err = s.journalRepo.ListEntriesByCategories(ctx,
			[]domain.EntryCategory{domain.HawalaSend, domain.HawalaReceive, domain.HawalaCancel}, from, to)
	case portssvc.ProjectionExpense:
		entries, err = s.journalRepo.ListEntriesByCategories(ctx,
			[]domain.EntryCategory{domain.Expense, domain.TaxPayment}, from, to)
	case portssvc.ProjectionSuspicious:
		entries, err = s.journalRepo.ListSuspiciousEntries(ctx, from, to)
	default:
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownProjection, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to project journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

// GenerateDAB builds the central-bank XML report over the current journal
// snapshot and persists it in DRAFT state.
func (s *reportingService) GenerateDAB(ctx context.Context, reportType domain.ReportType, period, branchCode, actingUserID string) (*domain.RegulatoryReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !reportType.IsValid() {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownReportType, reportType)
	}

	cfg, err := s.configSvc.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	entries, err := s.selectReportEntries(ctx, reportType)
	if err != nil {
		return nil, err
	}

	nationalIDs, err := s.nationalIDIndex(ctx)
	if err != nil {
		logger.Warn("Failed to resolve customer national ids for report", slog.String("error", err.Error()))
		nationalIDs = map[string]string{}
	}

	now := time.Now().UTC()
	doc := dabReport{
		Xmlns: dabNamespace,
		Header: dabHeader{
			ReportType:   string(reportType),
			Period:       period,
			LicenseNo:    cfg.Company.License,
			ProviderName: cfg.Company.Name,
			BranchCode:   branchCode,
			GeneratedAt:  now.Format(time.RFC3339),
			RecordCount:  len(entries),
		},
		Records: make([]dabTxn, 0, len(entries)),
	}

	totalVolume := decimal.Zero
	suspiciousCount := 0
	for i := range entries {
		e := &entries[i]
		txn := dabTxn{
			EntryID:      e.EntryID,
			Date:         e.EntryDate.Format(time.RFC3339),
			Category:     string(e.Category),
			Direction:    string(e.Direction()),
			Amount:       e.Amount().String(),
			Currency:     e.CurrencyCode,
			CustomerName: e.CustomerName,
			AgentName:    e.AgentName,
			Suspicious:   e.IsSuspicious,
			RiskScore:    e.RiskScore,
			Reversal:     e.IsReversal,
		}
		if !e.Rate.IsZero() {
			txn.Rate = e.Rate.String()
		}
		if e.CustomerID != nil {
			txn.NationalID = nationalIDs[*e.CustomerID]
		}
		doc.Records = append(doc.Records, txn)

		totalVolume = totalVolume.Add(e.Amount())
		if e.IsSuspicious {
			suspiciousCount++
		}
	}

	xmlBytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report XML: %w", err)
	}

	report := domain.RegulatoryReport{
		ReportID:          uuid.NewString(),
		Type:              reportType,
		Period:            period,
		BranchCode:        branchCode,
		Status:            domain.SubmissionDraft,
		XMLContent:        xml.Header + string(xmlBytes),
		TotalTransactions: len(entries),
		TotalVolume:       totalVolume,
		SuspiciousCount:   suspiciousCount,
		GeneratedAt:       now,
		GeneratedBy:       actingUserID,
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		logger.Error("Failed to save regulatory report", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save regulatory report: %w", err)
	}

	if err := s.auditSvc.Record(ctx, actingUserID, "REPORT_GEN",
		fmt.Sprintf("Generated %s for %s (%d transactions)", reportType, period, len(entries)),
		domain.SeverityInfo); err != nil {
		logger.Error("Failed to write audit log entry", slog.String("error", err.Error()))
	}

	logger.Info("Regulatory report generated",
		slog.String("report_id", report.ReportID),
		slog.String("type", string(reportType)),
		slog.Int("transactions", len(entries)))
	return &report, nil
}

// selectReportEntries picks the journal slice each report type covers.
func (s *reportingService) selectReportEntries(ctx context.Context, reportType domain.ReportType) ([]domain.JournalEntry, error) {
	switch reportType {
	case domain.ReportSuspicious:
		entries, err := s.journalRepo.ListSuspiciousEntries(ctx, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list suspicious entries: %w", err)
		}
		return entries, nil
	case domain.ReportThreshold:
		entries, err := s.journalRepo.ListEntries(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list entries: %w", err)
		}
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.Amount().GreaterThanOrEqual(reportThreshold) {
				filtered = append(filtered, e)
			}
		}
		return filtered, nil
	default:
		entries, err := s.journalRepo.ListEntries(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list entries: %w", err)
		}
		return entries, nil
	}
}

// nationalIDIndex maps customer ids to national ids for report records.
func (s *reportingService) nationalIDIndex(ctx context.Context) (map[string]string, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]string, len(customers))
	for i := range customers {
		index[customers[i].CustomerID] = customers[i].NationalID
	}
	return index, nil
}

// SubmitDAB moves a draft report through the submission pipeline. There is
// no live regulator endpoint; acceptance is simulated and the assigned
// reference recorded, as the portal integration did before go-live.
func (s *reportingService) SubmitDAB(ctx context.Context, reportID string) (*domain.RegulatoryReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}
	if report.Status != domain.SubmissionDraft && report.Status != domain.SubmissionRejected {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrConflict, ErrReportNotDraft, report.Status)
	}

	now := time.Now().UTC()
	reference := fmt.Sprintf("DAB-%s-%s", now.Format("20060102"), report.ReportID[:8])

	if err := s.reportRepo.UpdateReportStatus(ctx, reportID, domain.SubmissionAccepted, reference, now); err != nil {
		logger.Error("Failed to update report status", slog.String("error", err.Error()), slog.String("report_id", reportID))
		return nil, fmt.Errorf("failed to update report status: %w", err)
	}

	report.Status = domain.SubmissionAccepted
	report.DABReference = reference

	if err := s.auditSvc.Record(ctx, report.GeneratedBy, "REPORT_SUBMIT",
		fmt.Sprintf("Submitted report %s, reference %s", reportID, reference),
		domain.SeverityInfo); err != nil {
		logger.Error("Failed to write audit log entry", slog.String("error", err.Error()))
	}

	logger.Info("Regulatory report submitted",
		slog.String("report_id", reportID),
		slog.String("dab_reference", reference))
	return report, nil
}

// History lists generated reports, newest first.
func (s *reportingService) History(ctx context.Context) ([]domain.RegulatoryReport, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if reports == nil {
		reports = []domain.RegulatoryReport{}
	}
	return reports, nil
}

// exportHeader is the column layout shared by the XLSX and CSV exports.
var exportHeader = []string{
	"Entry ID", "Date", "Category", "Description", "Debit", "Credit",
	"Currency", "Rate", "Customer", "Agent", "Commission", "Suspicious", "Status",
}

func exportRow(e *domain.JournalEntry) []string {
	status := "ACTIVE"
	switch {
	case e.IsDeleted:
		status = "DELETED"
	case e.IsReversal:
		status = "REVERSAL"
	case e.ReversedByID != nil:
		status = "REVERSED"
	}
	return []string{
		e.EntryID,
		e.EntryDate.Format("2006-01-02 15:04"),
		string(e.Category),
		e.Description,
		e.Debit.String(),
		e.Credit.String(),
		e.CurrencyCode,
		e.Rate.String(),
		e.CustomerName,
		e.AgentName,
		e.Commission.String(),
		fmt.Sprintf("%t", e.IsSuspicious),
		status,
	}
}

// exportEntries is the window both export formats render: everything
// including tombstoned entries, so the export is a faithful ledger dump.
func (s *reportingService) exportEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for export: %w", err)
	}
	if from == nil && to == nil {
		return entries, nil
	}
	filtered := entries[:0:0]
	for _, e := range entries {
		if from != nil && e.EntryDate.Before(*from) {
			continue
		}
		if to != nil && e.EntryDate.After(*to) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

// ExportXLSX renders the journal window as an XLSX workbook.
func (s *reportingService) ExportXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	entries, err := s.exportEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Journal"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for row, entry := range entries {
		values := exportRow(&entry)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Journal exported to XLSX", slog.Int("rows", len(entries)))
	return buf.Bytes(), nil
}

// ExportCSV renders the journal window as CSV bytes.
func (s *reportingService) ExportCSV(ctx context.Context, from, to *time.Time) ([]byte, error) {
	entries, err := s.exportEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range entries {
		if err := w.Write(exportRow(&entries[i])); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Journal exported to CSV", slog.Int("rows", len(entries)))
	return buf.Bytes(), nil
}
