package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType is the kind of regulatory report submitted to the central bank.
type ReportType string

const (
	ReportDaily      ReportType = "DAILY_TRANSACTION_REPORT"
	ReportMonthly    ReportType = "MONTHLY_CONSOLIDATED"
	ReportSuspicious ReportType = "SUSPICIOUS_ACTIVITY_REPORT"
	ReportThreshold  ReportType = "CASH_THRESHOLD_REPORT"
)

// IsValid reports whether t is a known report type.
func (t ReportType) IsValid() bool {
	switch t {
	case ReportDaily, ReportMonthly, ReportSuspicious, ReportThreshold:
		return true
	}
	return false
}

// SubmissionStatus tracks a report through the submission pipeline.
type SubmissionStatus string

const (
	SubmissionDraft      SubmissionStatus = "DRAFT"
	SubmissionValidating SubmissionStatus = "VALIDATING"
	SubmissionSubmitted  SubmissionStatus = "SUBMITTED"
	SubmissionAccepted   SubmissionStatus = "ACCEPTED"
	SubmissionRejected   SubmissionStatus = "REJECTED"
)

// RegulatoryReport is a generated central-bank report together with its
// submission state. The XML content is a pure projection of the journal
// snapshot taken at generation time.
type RegulatoryReport struct {
	ReportID     string           `json:"reportID"`
	Type         ReportType       `json:"type"`
	Period       string           `json:"period"` // e.g. "1403-12-07"
	BranchCode   string           `json:"branchCode"`
	Status       SubmissionStatus `json:"status"`
	XMLContent   string           `json:"xmlContent,omitempty"`
	DABReference string           `json:"dabReference,omitempty"`

	TotalTransactions int             `json:"totalTransactions"`
	TotalVolume       decimal.Decimal `json:"totalVolume"`
	SuspiciousCount   int             `json:"suspiciousCount"`

	GeneratedAt time.Time `json:"generatedAt"`
	GeneratedBy string    `json:"generatedBy"`
}
