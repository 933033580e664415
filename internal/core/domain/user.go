package domain

// UserRole controls which back-office surfaces a user may operate.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleCompliance UserRole = "COMPLIANCE"
	RoleTeller     UserRole = "TELLER"
	RoleTreasury   UserRole = "TREASURY"
)

// User is a back-office operator account. The authenticated user id is what
// every audit log entry records as the acting user.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	AuditFields
}
