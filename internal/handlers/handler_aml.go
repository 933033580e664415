package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

type amlHandler struct {
	amlService portssvc.AMLSvcFacade
}

func newAMLHandler(amlService portssvc.AMLSvcFacade) *amlHandler {
	return &amlHandler{amlService: amlService}
}

func registerAMLRoutes(rg *gin.RouterGroup, amlService portssvc.AMLSvcFacade) {
	h := newAMLHandler(amlService)
	rg.POST("/aml/analyze", h.analyze)
}

// analyze scores a proposed transaction before it is committed to the
// journal. The verdict is advisory; committing the entry is a separate call.
func (h *amlHandler) analyze(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AnalyzeTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for analyze", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	assessment, err := h.amlService.Analyze(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to analyze transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze transaction"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}
