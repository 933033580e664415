package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

type configHandler struct {
	configService portssvc.ConfigSvcFacade
}

func newConfigHandler(configService portssvc.ConfigSvcFacade) *configHandler {
	return &configHandler{configService: configService}
}

func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.ConfigSvcFacade) {
	h := newConfigHandler(configService)
	config := rg.Group("/config")
	{
		config.GET("", h.getConfig)
		config.PUT("", h.updateConfig)
	}
}

func (h *configHandler) getConfig(c *gin.Context) {
	cfg, err := h.configService.Get(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load system config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load system config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *configHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), req, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Stale config update rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update system config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update system config"})
		}
		return
	}

	c.JSON(http.StatusOK, cfg)
}
