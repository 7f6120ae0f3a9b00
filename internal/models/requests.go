package models

// OnboardingRequest carries everything plan generation needs. Submitting
// it again replaces the previous profile wholesale.
type OnboardingRequest struct {
	Subjects             []Subject         `json:"subjects"`
	AvailableHoursPerDay float64           `json:"available_hours_per_day"`
	FixedCommitments     map[string]string `json:"fixed_commitments"`
	StartDate            string            `json:"start_date"` // YYYY-MM-DD, defaults to today
}

// CheckinRequest is one daily mood check-in. MoodScore is derived
// server-side; PlannedHours defaults to the plan's total for that date.
type CheckinRequest struct {
	Date         string  `json:"date"`
	Mood         string  `json:"mood"`
	PlannedHours float64 `json:"planned_hours"`
	ActualHours  float64 `json:"actual_hours"`
	FocusLevel   string  `json:"focus_level"`
}

// ToggleTaskRequest flips one task's completed state for a date.
type ToggleTaskRequest struct {
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// AdjustRequest picks which plan day to rework. Date defaults to today.
type AdjustRequest struct {
	Date string `json:"date"`
}
