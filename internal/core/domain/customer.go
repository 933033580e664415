package domain

import "time"

// KYCStatus indicates where a customer sits in the verification pipeline.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

// RiskLevel is the compliance risk classification of a customer.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Customer is a KYC profile owned by the customer registry. Updates replace
// the full record; the journal only ever keeps a denormalized id+name
// snapshot, never a live reference.
type Customer struct {
	CustomerID   string    `json:"customerID"`
	NationalID   string    `json:"nationalID"`
	FullName     string    `json:"fullName"`
	FatherName   string    `json:"fatherName"`
	Phone        string    `json:"phone"`
	KYCStatus    KYCStatus `json:"kycStatus"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	RegisteredAt time.Time `json:"registeredAt"`
	AuditFields
}
