package entities

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Claim is one prior-loss record on the home claims step.
type Claim struct {
	ID          string `json:"id"`
	DateOfLoss  string `json:"dateOfLoss"`
	Loss        string `json:"loss"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// NewClaim returns an empty claim with a fresh session-stable id.
func NewClaim() Claim {
	return Claim{ID: uuid.NewString()}
}

// ClaimsGateField is the radio field that gates the claims list; the list
// is editable only while it reads ClaimsGateYes.
const (
	ClaimsGateField = "hadLossesLast5Years"
	ClaimsGateYes   = "Yes"
)

func DecodeClaims(raw string) ([]Claim, error) {
	if raw == "" {
		return nil, nil
	}
	var claims []Claim
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, fmt.Errorf("decode claims: %w", err)
	}
	return claims, nil
}

func EncodeClaims(claims []Claim) string {
	if claims == nil {
		claims = []Claim{}
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
