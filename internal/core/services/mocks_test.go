package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, includeDeleted bool) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCategories(ctx context.Context, categories []domain.EntryCategory, from, to *time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, categories, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListSuspiciousEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) MarkEntryDeleted(ctx context.Context, entryID string) (bool, error) {
	args := m.Called(ctx, entryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, originalEntryID string) error {
	args := m.Called(ctx, reversal, originalEntryID)
	return args.Error(0)
}

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Mock ConfigRepository ---

type MockConfigRepository struct {
	mock.Mock
}

var _ portsrepo.ConfigRepositoryFacade = (*MockConfigRepository)(nil)

func (m *MockConfigRepository) FindConfig(ctx context.Context) (*domain.SystemConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfig), args.Error(1)
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context, cfg domain.SystemConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---

type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveLog(ctx context.Context, log domain.SystemAuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) PruneToLimit(ctx context.Context, limit int) error {
	args := m.Called(ctx, limit)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListLogs(ctx context.Context) ([]domain.SystemAuditLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemAuditLog), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock ReportRepository ---

type MockReportRepository struct {
	mock.Mock
}

var _ portsrepo.ReportRepositoryFacade = (*MockReportRepository)(nil)

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.RegulatoryReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.RegulatoryReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegulatoryReport), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.RegulatoryReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegulatoryReport), args.Error(1)
}

func (m *MockReportRepository) UpdateReportStatus(ctx context.Context, reportID string, status domain.SubmissionStatus, dabReference string, updatedAt time.Time) error {
	args := m.Called(ctx, reportID, status, dabReference, updatedAt)
	return args.Error(0)
}

// --- Mock ConfigService ---

type MockConfigService struct {
	mock.Mock
}

var _ portssvc.ConfigSvcFacade = (*MockConfigService)(nil)

func (m *MockConfigService) Get(ctx context.Context) (*domain.SystemConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfig), args.Error(1)
}

func (m *MockConfigService) Update(ctx context.Context, req dto.UpdateConfigRequest, actingUserID string) (*domain.SystemConfig, error) {
	args := m.Called(ctx, req, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemConfig), args.Error(1)
}

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

func (m *MockAuditService) Record(ctx context.Context, userID, action, details string, severity domain.LogSeverity) error {
	args := m.Called(ctx, userID, action, details, severity)
	return args.Error(0)
}

func (m *MockAuditService) List(ctx context.Context) ([]domain.SystemAuditLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SystemAuditLog), args.Error(1)
}

// --- Mock RiskOracle ---

type MockRiskOracle struct {
	mock.Mock
}

var _ portssvc.RiskOracle = (*MockRiskOracle)(nil)

func (m *MockRiskOracle) Score(ctx context.Context, req dto.AnalyzeTransactionRequest) (*domain.RiskAssessment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskAssessment), args.Error(1)
}
