package dto

import (
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateReportRequest asks for a regulatory report over the current journal
// snapshot.
type GenerateReportRequest struct {
	Type       domain.ReportType `json:"type" binding:"required"`
	Period     string            `json:"period" binding:"required"`
	BranchCode string            `json:"branchCode" binding:"required"`
}

// ReportResponse defines the data returned for a regulatory report. XML
// content is only included when requested individually.
type ReportResponse struct {
	ReportID          string                  `json:"reportID"`
	Type              domain.ReportType       `json:"type"`
	Period            string                  `json:"period"`
	BranchCode        string                  `json:"branchCode"`
	Status            domain.SubmissionStatus `json:"status"`
	DABReference      string                  `json:"dabReference,omitempty"`
	TotalTransactions int                     `json:"totalTransactions"`
	TotalVolume       decimal.Decimal         `json:"totalVolume"`
	SuspiciousCount   int                     `json:"suspiciousCount"`
	GeneratedAt       time.Time               `json:"generatedAt"`
	XMLContent        string                  `json:"xmlContent,omitempty"`
}

// ToReportResponse converts a domain.RegulatoryReport to its response DTO.
func ToReportResponse(r *domain.RegulatoryReport, includeXML bool) ReportResponse {
	resp := ReportResponse{
		ReportID:          r.ReportID,
		Type:              r.Type,
		Period:            r.Period,
		BranchCode:        r.BranchCode,
		Status:            r.Status,
		DABReference:      r.DABReference,
		TotalTransactions: r.TotalTransactions,
		TotalVolume:       r.TotalVolume,
		SuspiciousCount:   r.SuspiciousCount,
		GeneratedAt:       r.GeneratedAt,
	}
	if includeXML {
		resp.XMLContent = r.XMLContent
	}
	return resp
}

// ToReportResponses converts a slice of reports to response DTOs, omitting
// the XML payloads.
func ToReportResponses(reports []domain.RegulatoryReport) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToReportResponse(&reports[i], false)
	}
	return responses
}
