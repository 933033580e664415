package domain

import (
	"strings"
	"time"
)

// LogSeverity tags how serious an audited action is.
type LogSeverity string

const (
	SeverityInfo     LogSeverity = "INFO"
	SeverityWarning  LogSeverity = "WARNING"
	SeverityCritical LogSeverity = "CRITICAL"
)

// AuditLogLimit is the number of most-recent entries the audit log retains.
// Older entries are silently pruned; callers needing a permanent trail must
// export before rotation.
const AuditLogLimit = 100

// SystemAuditLog is one write-once entry in the bounded audit log. Every
// mutating call into the journal, customer registry or config store records
// one.
type SystemAuditLog struct {
	LogID     string      `json:"logID"`
	UserID    string      `json:"userID"` // acting user
	Action    string      `json:"action"` // e.g. TXN_ENTRY, CUSTOMER_REG
	Module    string      `json:"module"` // derived from the action code prefix
	Details   string      `json:"details"`
	Severity  LogSeverity `json:"severity"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ModuleFromAction derives the module name from an action code: the segment
// before the first underscore ("TXN_ENTRY" -> "TXN").
func ModuleFromAction(action string) string {
	if idx := strings.Index(action, "_"); idx > 0 {
		return action[:idx]
	}
	return action
}
