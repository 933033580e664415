package dto

import "github.com/sarafcore/sarafcore_backend/internal/core/domain"

// UpdateConfigRequest replaces the whole system configuration record.
// Version must match the current stored version; the service bumps it.
type UpdateConfigRequest struct {
	Company           domain.CompanyProfile   `json:"company" binding:"required"`
	Currencies        []domain.CurrencyConfig `json:"currencies" binding:"required,min=1,dive"`
	ExpenseCategories []string                `json:"expenseCategories"`
	Branches          []domain.Branch         `json:"branches"`
	Language          string                  `json:"language" binding:"required,oneof=fa ps en"`
	Calendar          string                  `json:"calendar" binding:"required,oneof=solar gregorian"`
	Version           int                     `json:"version" binding:"required,min=1"`
}

// ToSystemConfig converts the request into the domain record.
func (r *UpdateConfigRequest) ToSystemConfig() domain.SystemConfig {
	return domain.SystemConfig{
		Company:           r.Company,
		Currencies:        r.Currencies,
		ExpenseCategories: r.ExpenseCategories,
		Branches:          r.Branches,
		Language:          r.Language,
		Calendar:          r.Calendar,
		Version:           r.Version,
	}
}
