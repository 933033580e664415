package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

var (
	ErrAmountNotPositive = errors.New("entry amount must be positive")
	ErrUnknownCategory   = errors.New("unknown entry category")
	ErrInactiveCurrency  = errors.New("currency is not in the active currency list")
	ErrCustomerUnknown   = errors.New("linked customer not found")
	ErrReverseOfReversal = errors.New("cannot reverse an entry that is itself a reversal")
	ErrAlreadyReversed   = errors.New("entry has already been reversed")
	ErrReverseDeleted    = errors.New("cannot reverse a deleted entry")
)

// LargeValueThreshold is the debit+credit magnitude above which an append is
// audited at WARNING severity instead of INFO.
var LargeValueThreshold = decimal.NewFromInt(100000)

// reversalDescriptionPrefix marks a compensating entry's description.
const reversalDescriptionPrefix = "Reversal (correction): "

// journalService is the append-only ledger core: entries are written once,
// tombstoned in place, or compensated by reversal entries. Financial fields
// are never mutated after creation.
type journalService struct {
	journalRepo  portsrepo.JournalRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	configSvc    portssvc.ConfigSvcFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	configSvc portssvc.ConfigSvcFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:  journalRepo,
		customerRepo: customerRepo,
		configSvc:    configSvc,
		auditSvc:     auditSvc,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateAppend checks the request against the append-boundary rules: a
// positive amount on exactly one side, a known category, and an active
// currency. The original browser implementation accepted anything; here the
// violations are rejected before persistence.
func (s *journalService) validateAppend(ctx context.Context, req dto.CreateEntryRequest) error {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if !req.Category.IsValid() {
		return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownCategory, req.Category)
	}
	if req.Commission.IsNegative() {
		return fmt.Errorf("%w: commission must not be negative", apperrors.ErrValidation)
	}

	cfg, err := s.configSvc.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load system config: %w", err)
	}
	if _, ok := cfg.ActiveCurrency(req.Currency); !ok {
		return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrInactiveCurrency, req.Currency)
	}
	return nil
}

// Append validates and persists a new entry, writing the audit trail entry
// afterwards. Implements portssvc.JournalSvcFacade.
func (s *journalService) Append(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateAppend(ctx, req); err != nil {
		return nil, err
	}

	// Resolve the customer link and freeze a name snapshot so reports stay
	// legible even if the registry record changes later.
	var customerName string
	if req.CustomerID != nil && *req.CustomerID != "" {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrCustomerUnknown, *req.CustomerID)
			}
			logger.Error("Failed to resolve customer for entry", slog.String("error", err.Error()), slog.String("customer_id", *req.CustomerID))
			return nil, fmt.Errorf("failed to resolve customer: %w", err)
		}
		customerName = customer.FullName
	}

	now := time.Now().UTC()
	entryDate := now
	if req.Date != nil {
		entryDate = req.Date.UTC()
	}

	debit, credit := decimal.Zero, decimal.Zero
	if req.Direction == domain.Debit {
		debit = req.Amount
	} else {
		credit = req.Amount
	}

	entry := domain.JournalEntry{
		EntryID:      uuid.NewString(),
		EntryDate:    entryDate,
		Description:  req.Description,
		Category:     req.Category,
		Debit:        debit,
		Credit:       credit,
		CurrencyCode: req.Currency,
		Rate:         req.Rate,
		CustomerID:   req.CustomerID,
		CustomerName: customerName,
		AgentName:    req.AgentName,
		Commission:   req.Commission,
		IsSuspicious: req.IsSuspicious,
		RiskScore:    req.RiskScore,
		RiskReason:   req.RiskReason,
		CreatedAt:    now,
		CreatedBy:    creatorUserID,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.audit(ctx, creatorUserID, "TXN_ENTRY",
		fmt.Sprintf("Recorded %s entry %s (%s %s)", entry.Category, entry.EntryID, entry.Amount().String(), entry.CurrencyCode),
		appendSeverity(entry))

	logger.Info("Journal entry appended",
		slog.String("entry_id", entry.EntryID),
		slog.String("category", string(entry.Category)),
		slog.String("currency", entry.CurrencyCode))
	return &entry, nil
}

// appendSeverity escalates the audit severity for large-value movements.
func appendSeverity(entry domain.JournalEntry) domain.LogSeverity {
	if entry.Debit.Add(entry.Credit).GreaterThan(LargeValueThreshold) {
		return domain.SeverityWarning
	}
	return domain.SeverityInfo
}

// List returns entries most-recently-appended first. Implements
// portssvc.JournalSvcFacade.
func (s *journalService) List(ctx context.Context, includeDeleted bool) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

// GetByID returns a single entry, tombstoned or not.
func (s *journalService) GetByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// SoftDelete tombstones an entry in place, preserving every other field. A
// repeated delete is an idempotent no-op and does not write a second audit
// entry. Implements portssvc.JournalSvcFacade.
func (s *journalService) SoftDelete(ctx context.Context, entryID string, actingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	alreadyDeleted, err := s.journalRepo.MarkEntryDeleted(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found for soft delete", slog.String("entry_id", entryID))
			return err
		}
		logger.Error("Failed to soft delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to soft delete entry %s: %w", entryID, err)
	}
	if alreadyDeleted {
		logger.Debug("Entry already deleted, no-op", slog.String("entry_id", entryID))
		return nil
	}

	s.audit(ctx, actingUserID, "TXN_DEL",
		fmt.Sprintf("Soft-deleted entry %s", entryID),
		domain.SeverityCritical)

	logger.Info("Journal entry soft-deleted", slog.String("entry_id", entryID))
	return nil
}

// Reverse appends a compensating entry mirroring the original: debit and
// credit swapped, same customer linkage, currency and rate, description
// prefixed as a correction. The original is only touched to record the
// back-link; both entries remain visible so the net balance effect is zero
// while the full history is preserved. Implements portssvc.JournalSvcFacade.
func (s *journalService) Reverse(ctx context.Context, entryID string, actingUserID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Original entry not found for reversal", slog.String("entry_id", entryID))
			return nil, err
		}
		logger.Error("Failed to fetch original entry for reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve original entry: %w", err)
	}

	if original.IsDeleted {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrReverseDeleted)
	}
	if original.IsReversal {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrReverseOfReversal)
	}
	if original.ReversedByID != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrAlreadyReversed)
	}

	now := time.Now().UTC()
	reversal := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		EntryDate:      now,
		Description:    reversalDescriptionPrefix + original.Description,
		Category:       reversalCategory(original),
		Debit:          original.Credit, // the compensating mirror
		Credit:         original.Debit,
		CurrencyCode:   original.CurrencyCode,
		Rate:           original.Rate,
		CustomerID:     original.CustomerID,
		CustomerName:   original.CustomerName,
		AgentName:      original.AgentName,
		Commission:     original.Commission,
		IsReversal:     true,
		ReversedFromID: &original.EntryID,
		CreatedAt:      now,
		CreatedBy:      actingUserID,
	}

	if err := s.journalRepo.SaveReversal(ctx, reversal, original.EntryID); err != nil {
		logger.Error("Failed to save reversal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save reversal entry: %w", err)
	}

	s.audit(ctx, actingUserID, "TXN_REVERSE",
		fmt.Sprintf("Reversed entry %s with %s", original.EntryID, reversal.EntryID),
		appendSeverity(reversal))

	logger.Info("Journal entry reversed",
		slog.String("entry_id", original.EntryID),
		slog.String("reversal_id", reversal.EntryID))
	return &reversal, nil
}

// reversalCategory picks the category of a compensating entry. Hawala
// reversals become HAWALA_CANCEL; everything else mirrors the cash direction.
func reversalCategory(original *domain.JournalEntry) domain.EntryCategory {
	if original.Category.IsHawala() {
		return domain.HawalaCancel
	}
	if original.Debit.GreaterThan(decimal.Zero) {
		return domain.CashOut
	}
	return domain.CashIn
}

// audit records a mutating action. An audit write failure never fails the
// business operation; the entry is already persisted and the original design
// tolerates the gap.
func (s *journalService) audit(ctx context.Context, userID, action, details string, severity domain.LogSeverity) {
	if err := s.auditSvc.Record(ctx, userID, action, details, severity); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit log entry",
			slog.String("error", err.Error()),
			slog.String("action", action))
	}
}
