package domain

import "errors"

// Allergy severity levels.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// Allergy risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

var ErrAllergyNotFound = errors.New("allergy not found")

// Allergy is a tracked allergen owned by a user.
type Allergy struct {
	ID        int    `json:"id" bson:"_id"`
	UserID    int    `json:"userId" bson:"user_id"`
	Name      string `json:"name" bson:"name"`
	Severity  string `json:"severity" bson:"severity"`
	RiskLevel string `json:"riskLevel" bson:"risk_level"`
}
