package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

type ratesHandler struct {
	ratesService portssvc.RatesSvcFacade
}

func newRatesHandler(ratesService portssvc.RatesSvcFacade) *ratesHandler {
	return &ratesHandler{ratesService: ratesService}
}

func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := newRatesHandler(ratesService)
	rg.GET("/rates/live", h.liveRates)
}

func (h *ratesHandler) liveRates(c *gin.Context) {
	rates, err := h.ratesService.Live(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to fetch live rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live rates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
