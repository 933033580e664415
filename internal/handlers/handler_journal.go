package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

// journalHandler handles HTTP requests for the ledger.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	amlService     portssvc.AMLSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade, amlService portssvc.AMLSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService, amlService: amlService}
}

// RegisterJournalRoutes mounts the ledger endpoints on the given group.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, amlService portssvc.AMLSvcFacade) {
	h := newJournalHandler(journalService, amlService)
	journal := rg.Group("/journal")
	{
		journal.POST("", h.appendEntry)
		journal.GET("", h.listEntries)
		journal.GET("/:entryID", h.getEntry)
		journal.DELETE("/:entryID", h.softDeleteEntry)
		journal.POST("/:entryID/reverse", h.reverseEntry)
	}
}

// appendEntry creates a new journal entry. Exchange and hawala entries are
// first run through the AML analysis and the verdict is frozen onto the
// entry; a suspicious verdict flags the entry but never blocks the append.
func (h *journalHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for appendEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if req.Category.IsHawala() || req.Category == domain.ExchangeBuy || req.Category == domain.ExchangeSell {
		assessment, err := h.amlService.Analyze(c.Request.Context(), dto.AnalyzeTransactionRequest{
			Category:     req.Category,
			Amount:       req.Amount,
			Currency:     req.Currency,
			Rate:         req.Rate,
			Counterparty: req.AgentName,
		})
		if err == nil {
			req.IsSuspicious = assessment.IsSuspicious
			req.RiskScore = &assessment.RiskScore
			req.RiskReason = assessment.Reasoning
		}
	}

	entry, err := h.journalService.Append(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error appending entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to append journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append journal entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries returns the ledger, newest first. ?includeDeleted=true also
// returns tombstoned entries.
func (h *journalHandler) listEntries(c *gin.Context) {
	includeDeleted := c.Query("includeDeleted") == "true"

	entries, err := h.journalService.List(c.Request.Context(), includeDeleted)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToEntryResponses(entries)})
}

func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("entryID")

	entry, err := h.journalService.GetByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *journalHandler) softDeleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actingUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.journalService.SoftDelete(c.Request.Context(), entryID, actingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to soft delete entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	actingUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.journalService.Reverse(c.Request.Context(), entryID, actingUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Conflict reversing entry", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to reverse entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversal))
}
