package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	defaultBranch    string
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade, defaultBranch string) *reportingHandler {
	return &reportingHandler{reportingService: reportingService, defaultBranch: defaultBranch}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, defaultBranch string) {
	h := newReportingHandler(reportingService, defaultBranch)
	reports := rg.Group("/reports")
	{
		reports.GET("/projections/:kind", h.projection)
		reports.POST("/dab", h.generateDAB)
		reports.POST("/dab/:reportID/submit", h.submitDAB)
		reports.GET("/dab", h.history)
		reports.GET("/dab/:reportID", h.getReport)
		reports.GET("/export/xlsx", h.exportXLSX)
		reports.GET("/export/csv", h.exportCSV)
	}
}

// parseWindow reads optional ?from= and ?to= date bounds (RFC 3339 or plain
// dates).
func parseWindow(c *gin.Context) (*time.Time, *time.Time, error) {
	parse := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return &t, nil
		}
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", value)
		}
		return &t, nil
	}

	from, err := parse(c.Query("from"))
	if err != nil {
		return nil, nil, err
	}
	to, err := parse(c.Query("to"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (h *reportingHandler) projection(c *gin.Context) {
	kind := portssvc.ProjectionKind(c.Param("kind"))

	from, to, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.reportingService.Project(c.Request.Context(), kind, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to project journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to project journal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToEntryResponses(entries)})
}

func (h *reportingHandler) generateDAB(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for generateDAB", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	branch := req.BranchCode
	if branch == "" {
		branch = h.defaultBranch
	}

	report, err := h.reportingService.GenerateDAB(c.Request.Context(), req.Type, req.Period, branch, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate regulatory report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate regulatory report"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report, true))
}

func (h *reportingHandler) submitDAB(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("reportID")

	report, err := h.reportingService.SubmitDAB(c.Request.Context(), reportID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit regulatory report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit regulatory report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report, false))
}

func (h *reportingHandler) history(c *gin.Context) {
	reports, err := h.reportingService.History(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": dto.ToReportResponses(reports)})
}

func (h *reportingHandler) getReport(c *gin.Context) {
	reportID := c.Param("reportID")

	reports, err := h.reportingService.History(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		return
	}
	for i := range reports {
		if reports[i].ReportID == reportID {
			c.JSON(http.StatusOK, dto.ToReportResponse(&reports[i], true))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
}

func (h *reportingHandler) exportXLSX(c *gin.Context) {
	from, to, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.reportingService.ExportXLSX(c.Request.Context(), from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to export XLSX", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export journal"})
		return
	}

	filename := fmt.Sprintf("sarafcore_journal_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func (h *reportingHandler) exportCSV(c *gin.Context) {
	from, to, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.reportingService.ExportCSV(c.Request.Context(), from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to export CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export journal"})
		return
	}

	filename := fmt.Sprintf("sarafcore_journal_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", content)
}
