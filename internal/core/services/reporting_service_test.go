package services_test

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockCustomerRepo *MockCustomerRepository
	mockReportRepo   *MockReportRepository
	mockConfigSvc    *MockConfigService
	mockAuditSvc     *MockAuditService
	service          portssvc.ReportingSvcFacade

	userID string
	config domain.SystemConfig
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockReportRepo = new(MockReportRepository)
	s.mockConfigSvc = new(MockConfigService)
	s.mockAuditSvc = new(MockAuditService)
	s.service = services.NewReportingService(
		s.mockJournalRepo, s.mockCustomerRepo, s.mockReportRepo, s.mockConfigSvc, s.mockAuditSvc)

	s.userID = uuid.NewString()
	s.config = domain.DefaultSystemConfig()
}

func reportEntry(category domain.EntryCategory, debit int64, suspicious bool) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      uuid.NewString(),
		EntryDate:    time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		Description:  "test movement",
		Category:     category,
		Debit:        decimal.NewFromInt(debit),
		Credit:       decimal.Zero,
		CurrencyCode: "USD",
		IsSuspicious: suspicious,
	}
}

func (s *ReportingServiceTestSuite) TestProjectExchange() {
	ctx := context.Background()
	expected := []domain.JournalEntry{reportEntry(domain.ExchangeBuy, 100, false)}

	s.mockJournalRepo.On("ListEntriesByCategories", ctx,
		[]domain.EntryCategory{domain.ExchangeBuy, domain.ExchangeSell},
		(*time.Time)(nil), (*time.Time)(nil)).Return(expected, nil).Once()

	entries, err := s.service.Project(ctx, portssvc.ProjectionExchange, nil, nil)

	s.Require().NoError(err)
	s.Equal(expected, entries)
}

func (s *ReportingServiceTestSuite) TestProjectSuspicious() {
	ctx := context.Background()
	expected := []domain.JournalEntry{reportEntry(domain.HawalaSend, 20000, true)}

	s.mockJournalRepo.On("ListSuspiciousEntries", ctx, (*time.Time)(nil), (*time.Time)(nil)).
		Return(expected, nil).Once()

	entries, err := s.service.Project(ctx, portssvc.ProjectionSuspicious, nil, nil)

	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *ReportingServiceTestSuite) TestProjectUnknownKind() {
	ctx := context.Background()

	_, err := s.service.Project(ctx, "WEATHER", nil, nil)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestGenerateDABDailyReport() {
	ctx := context.Background()

	entries := []domain.JournalEntry{
		reportEntry(domain.CashIn, 1000, false),
		reportEntry(domain.ExchangeBuy, 15000, true),
	}

	s.mockConfigSvc.On("Get", ctx).Return(&s.config, nil).Once()
	s.mockJournalRepo.On("ListEntries", ctx, false).Return(entries, nil).Once()
	s.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{}, nil).Once()

	var saved domain.RegulatoryReport
	s.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.RegulatoryReport")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.RegulatoryReport)
		}).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "REPORT_GEN", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	report, err := s.service.GenerateDAB(ctx, domain.ReportDaily, "1403-12-25", "MAIN", s.userID)

	s.Require().NoError(err)
	s.Equal(domain.SubmissionDraft, report.Status)
	s.Equal(2, report.TotalTransactions)
	s.Equal(1, report.SuspiciousCount)
	s.True(report.TotalVolume.Equal(decimal.NewFromInt(16000)))

	// the stored XML carries the EMS namespace, header and one record per entry
	s.Contains(saved.XMLContent, `xmlns="http://dab.gov.af/ems/v2"`)
	s.Contains(saved.XMLContent, "<ReportType>DAILY_TRANSACTION_REPORT</ReportType>")
	s.Contains(saved.XMLContent, s.config.Company.License)
	s.Equal(2, strings.Count(saved.XMLContent, "<Transaction>"))

	// well-formed XML
	var doc struct {
		XMLName xml.Name `xml:"EMSReport"`
	}
	s.NoError(xml.Unmarshal([]byte(strings.TrimPrefix(saved.XMLContent, xml.Header)), &doc))
}

func (s *ReportingServiceTestSuite) TestGenerateDABSuspiciousReportFiltersEntries() {
	ctx := context.Background()

	s.mockConfigSvc.On("Get", ctx).Return(&s.config, nil).Once()
	s.mockJournalRepo.On("ListSuspiciousEntries", ctx, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.JournalEntry{reportEntry(domain.HawalaSend, 12000, true)}, nil).Once()
	s.mockCustomerRepo.On("ListCustomers", ctx).Return([]domain.Customer{}, nil).Once()
	s.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.RegulatoryReport")).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "REPORT_GEN", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	report, err := s.service.GenerateDAB(ctx, domain.ReportSuspicious, "1403-12", "MAIN", s.userID)

	s.Require().NoError(err)
	s.Equal(1, report.TotalTransactions)
	s.Equal(1, report.SuspiciousCount)
}

func (s *ReportingServiceTestSuite) TestGenerateDABRejectsUnknownType() {
	ctx := context.Background()

	_, err := s.service.GenerateDAB(ctx, "WEEKLY_GOSSIP", "1403-12", "MAIN", s.userID)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestSubmitDABAssignsReference() {
	ctx := context.Background()
	report := &domain.RegulatoryReport{
		ReportID:    uuid.NewString(),
		Type:        domain.ReportDaily,
		Status:      domain.SubmissionDraft,
		GeneratedBy: s.userID,
	}

	s.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()
	s.mockReportRepo.On("UpdateReportStatus", ctx, report.ReportID, domain.SubmissionAccepted,
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "REPORT_SUBMIT", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	submitted, err := s.service.SubmitDAB(ctx, report.ReportID)

	s.Require().NoError(err)
	s.Equal(domain.SubmissionAccepted, submitted.Status)
	s.True(strings.HasPrefix(submitted.DABReference, "DAB-"))
}

func (s *ReportingServiceTestSuite) TestSubmitDABRejectsNonDraft() {
	ctx := context.Background()
	report := &domain.RegulatoryReport{
		ReportID: uuid.NewString(),
		Status:   domain.SubmissionAccepted,
	}

	s.mockReportRepo.On("FindReportByID", ctx, report.ReportID).Return(report, nil).Once()

	_, err := s.service.SubmitDAB(ctx, report.ReportID)

	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *ReportingServiceTestSuite) TestExportCSVIncludesTombstones() {
	ctx := context.Background()

	active := reportEntry(domain.CashIn, 1000, false)
	deleted := reportEntry(domain.CashOut, 500, false)
	deleted.IsDeleted = true

	s.mockJournalRepo.On("ListEntries", ctx, true).
		Return([]domain.JournalEntry{active, deleted}, nil).Once()

	content, err := s.service.ExportCSV(ctx, nil, nil)

	s.Require().NoError(err)
	text := string(content)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	s.Len(lines, 3) // header + two rows
	s.Contains(lines[0], "Entry ID")
	s.Contains(text, "DELETED")
}

func (s *ReportingServiceTestSuite) TestExportCSVDateWindow() {
	ctx := context.Background()

	inside := reportEntry(domain.CashIn, 100, false)
	outside := reportEntry(domain.CashIn, 200, false)
	outside.EntryDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s.mockJournalRepo.On("ListEntries", ctx, true).
		Return([]domain.JournalEntry{inside, outside}, nil).Once()

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	content, err := s.service.ExportCSV(ctx, &from, nil)

	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	s.Len(lines, 2) // header + the 2025 entry only
}

func (s *ReportingServiceTestSuite) TestExportXLSXProducesWorkbook() {
	ctx := context.Background()

	s.mockJournalRepo.On("ListEntries", ctx, true).
		Return([]domain.JournalEntry{reportEntry(domain.CashIn, 1000, false)}, nil).Once()

	content, err := s.service.ExportXLSX(ctx, nil, nil)

	s.Require().NoError(err)
	s.NotEmpty(content)
	// XLSX files are zip archives
	s.Equal([]byte{'P', 'K'}, content[:2])
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
