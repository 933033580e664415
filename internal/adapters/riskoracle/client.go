// Package riskoracle talks to the external AML scoring service. The client
// is deliberately thin: the AML service owns the fallback policy, so any
// transport or decoding failure is simply returned.
package riskoracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

const defaultTimeout = 8 * time.Second

// verdictPayload is the oracle's wire schema.
type verdictPayload struct {
	IsSuspicious    bool   `json:"isSuspicious"`
	RiskScore       int32  `json:"riskScore"`
	Reasoning       string `json:"reasoning"`
	SuggestedAction string `json:"suggestedAction"`
	FlaggedFields   []struct {
		Field    string `json:"field"`
		Reason   string `json:"reason"`
		Severity string `json:"severity"`
	} `json:"flaggedFields"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a scoring client for the given endpoint. A zero timeout
// gets the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portssvc.RiskOracle = (*Client)(nil)

// Score submits the proposed transaction and decodes the verdict.
func (c *Client) Score(ctx context.Context, req dto.AnalyzeTransactionRequest) (*domain.RiskAssessment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scoring request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/score", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var payload verdictPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode scoring response: %w", err)
	}

	assessment := &domain.RiskAssessment{
		IsSuspicious:    payload.IsSuspicious,
		RiskScore:       payload.RiskScore,
		Reasoning:       payload.Reasoning,
		SuggestedAction: payload.SuggestedAction,
	}
	for _, f := range payload.FlaggedFields {
		assessment.FlaggedFields = append(assessment.FlaggedFields, domain.FlaggedField{
			Field:    f.Field,
			Reason:   f.Reason,
			Severity: f.Severity,
		})
	}
	return assessment, nil
}
