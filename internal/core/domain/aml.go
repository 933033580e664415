package domain

// OracleStatus reports whether a risk verdict came from the live scoring
// oracle or the deterministic local fallback.
type OracleStatus string

const (
	OracleOnline  OracleStatus = "ONLINE"
	OracleOffline OracleStatus = "OFFLINE"
)

// FlaggedField names one transaction field the oracle found problematic.
type FlaggedField struct {
	Field    string `json:"field"`
	Reason   string `json:"reason"`
	Severity string `json:"severity"`
}

// RiskAssessment is the verdict returned for a proposed transaction, either
// by the external scoring oracle or by the local fallback rule.
type RiskAssessment struct {
	IsSuspicious    bool           `json:"isSuspicious"`
	RiskScore       int32          `json:"riskScore"` // 0-100
	Reasoning       string         `json:"reasoning"`
	SuggestedAction string         `json:"suggestedAction"`
	FlaggedFields   []FlaggedField `json:"flaggedFields"`
	OracleStatus    OracleStatus   `json:"oracleStatus"`
}
