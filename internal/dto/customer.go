package dto

import (
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// CreateCustomerRequest is the payload for registering a KYC profile.
type CreateCustomerRequest struct {
	NationalID string           `json:"nationalID" binding:"required"`
	FullName   string           `json:"fullName" binding:"required"`
	FatherName string           `json:"fatherName"`
	Phone      string           `json:"phone"`
	KYCStatus  domain.KYCStatus `json:"kycStatus" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	RiskLevel  domain.RiskLevel `json:"riskLevel" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateCustomerRequest replaces the full customer record.
type UpdateCustomerRequest struct {
	NationalID string           `json:"nationalID" binding:"required"`
	FullName   string           `json:"fullName" binding:"required"`
	FatherName string           `json:"fatherName"`
	Phone      string           `json:"phone"`
	KYCStatus  domain.KYCStatus `json:"kycStatus" binding:"required,oneof=PENDING APPROVED REJECTED"`
	RiskLevel  domain.RiskLevel `json:"riskLevel" binding:"required,oneof=LOW MEDIUM HIGH"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID   string           `json:"customerID"`
	NationalID   string           `json:"nationalID"`
	FullName     string           `json:"fullName"`
	FatherName   string           `json:"fatherName"`
	Phone        string           `json:"phone"`
	KYCStatus    domain.KYCStatus `json:"kycStatus"`
	RiskLevel    domain.RiskLevel `json:"riskLevel"`
	RegisteredAt time.Time        `json:"registeredAt"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:   c.CustomerID,
		NationalID:   c.NationalID,
		FullName:     c.FullName,
		FatherName:   c.FatherName,
		Phone:        c.Phone,
		KYCStatus:    c.KYCStatus,
		RiskLevel:    c.RiskLevel,
		RegisteredAt: c.RegisteredAt,
	}
}

// ToCustomerResponses converts a slice of customers to response DTOs.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
