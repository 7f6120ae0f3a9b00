// Package wellness decides when burnout scoring is warranted and provides
// the rule-based scorer and day adjuster used when the AI collaborator is
// unavailable.
package wellness

import "planwise-backend/internal/models"

// MinHistoryForAssessment is the fewest check-ins worth scoring; below
// this the signal is too noisy and no remote call is made.
const MinHistoryForAssessment = 3

// AlertRecommendations caps how many recommendations an alert surfaces.
const AlertRecommendations = 3

// ShouldAssess reports whether the mood history is deep enough to score.
func ShouldAssess(history []models.MoodEntry) bool {
	return len(history) >= MinHistoryForAssessment
}

// AlertWorthy reports whether an assessment must be surfaced to the user.
func AlertWorthy(a *models.BurnoutAssessment) bool {
	if a == nil {
		return false
	}
	return a.RiskLevel == models.RiskHigh || a.RiskLevel == models.RiskCritical
}

// TopRecommendations returns the first AlertRecommendations entries.
func TopRecommendations(a *models.BurnoutAssessment) []string {
	if a == nil {
		return nil
	}
	if len(a.Recommendations) <= AlertRecommendations {
		return a.Recommendations
	}
	return a.Recommendations[:AlertRecommendations]
}
