package domain

// CompanyProfile identifies the licensed exchange business.
type CompanyProfile struct {
	Name    string `json:"name"`
	License string `json:"license"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CurrencyConfig describes one currency the business deals in. Exactly one
// currency is expected to be the base; journal rates are quoted against it.
type CurrencyConfig struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	IsBase bool   `json:"isBase"`
	Active bool   `json:"active"`
}

// Branch is a physical branch of the business.
type Branch struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// SystemConfig is the singleton configuration record. It is read and replaced
// as a whole; Version increments on every replace so stale writers can be
// detected.
type SystemConfig struct {
	Company           CompanyProfile   `json:"company"`
	Currencies        []CurrencyConfig `json:"currencies"`
	ExpenseCategories []string         `json:"expenseCategories"`
	Branches          []Branch         `json:"branches"`
	Language          string           `json:"language"` // fa, ps or en
	Calendar          string           `json:"calendar"` // solar or gregorian
	Version           int              `json:"version"`
}

// ActiveCurrency returns the config for code if it exists and is active.
func (c *SystemConfig) ActiveCurrency(code string) (CurrencyConfig, bool) {
	for _, cur := range c.Currencies {
		if cur.Code == code && cur.Active {
			return cur, true
		}
	}
	return CurrencyConfig{}, false
}

// BaseCurrency returns the base currency code, defaulting to USD when the
// config carries no base flag.
func (c *SystemConfig) BaseCurrency() string {
	for _, cur := range c.Currencies {
		if cur.IsBase {
			return cur.Code
		}
	}
	return "USD"
}

// DefaultSystemConfig is the configuration seeded on first read when no
// config row exists yet.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		Company: CompanyProfile{
			Name:    "Zaki Jaber Exchange & Money Services",
			License: "AF-LICENSE-7860",
			Phone:   "+93 700 123 456",
			Address: "Kabul, Sarai Shahzada",
		},
		Currencies: []CurrencyConfig{
			{Code: "USD", Symbol: "$", IsBase: true, Active: true},
			{Code: "AFN", Symbol: "؋", IsBase: false, Active: true},
			{Code: "PKR", Symbol: "Rs", IsBase: false, Active: true},
			{Code: "EUR", Symbol: "€", IsBase: false, Active: true},
		},
		ExpenseCategories: []string{"Salaries", "Rent", "Utilities", "Taxes", "Miscellaneous"},
		Branches: []Branch{
			{ID: "MAIN", Name: "Kabul Head Office", Active: true},
			{ID: "HERAT", Name: "Herat Branch", Active: true},
		},
		Language: "fa",
		Calendar: "solar",
		Version:  1,
	}
}
