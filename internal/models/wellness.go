package models

const (
	MoodEnergized = "Energized"
	MoodOkay      = "Okay"
	MoodTired     = "Tired"
	MoodBurnedOut = "Burned out"
)

const (
	FocusHigh   = "High"
	FocusMedium = "Medium"
	FocusLow    = "Low"
)

// MoodEntry is one daily check-in. MoodScore is derived from Mood and
// ranges 1 (Burned out) to 4 (Energized).
type MoodEntry struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	Mood         string  `json:"mood"`
	MoodScore    int     `json:"mood_score"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	FocusLevel   string  `json:"focus_level"`
}

// MoodScore maps a mood label to its 1-4 score. Unknown moods score 0.
func MoodScore(mood string) int {
	switch mood {
	case MoodEnergized:
		return 4
	case MoodOkay:
		return 3
	case MoodTired:
		return 2
	case MoodBurnedOut:
		return 1
	}
	return 0
}

// BurnoutAssessment is the scored result of a burnout check. It is
// ephemeral: each new assessment overwrites the last, and a consumed
// adjustment clears it.
type BurnoutAssessment struct {
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"` // 0-100
	Signals          []string `json:"signals"`
	Recommendations  []string `json:"recommendations"`
	ShouldAdjustPlan bool     `json:"should_adjust_plan"`
}

// WSMessage is the envelope pushed to websocket clients.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// BurnoutAlert is the websocket payload for an alert-worthy assessment.
type BurnoutAlert struct {
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"`
	Recommendations  []string `json:"recommendations"`
	ShouldAdjustPlan bool     `json:"should_adjust_plan"`
}
