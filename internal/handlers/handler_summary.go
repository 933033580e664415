package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(summaryService portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: summaryService}
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)
	summary := rg.Group("/summary")
	{
		summary.GET("", h.getSummary)
		summary.GET("/:currency", h.getCurrencySummary)
	}
}

func (h *summaryHandler) getSummary(c *gin.Context) {
	summaries, err := h.summaryService.Summarize(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": dto.ToCurrencySummaryResponses(summaries)})
}

func (h *summaryHandler) getCurrencySummary(c *gin.Context) {
	currency := c.Param("currency")

	summary, err := h.summaryService.SummarizeCurrency(c.Request.Context(), currency)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to compute currency summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencySummaryResponse(summary))
}
