package models

// Priority levels shared by subjects and tasks.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

const (
	TaskLearn    = "Learn"
	TaskRevise   = "Revise"
	TaskPractice = "Practice"
)

// Risk levels label both a whole week and a live assessment.
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// Subject is one exam the user is preparing for. Subjects are replaced
// wholesale whenever onboarding is re-run, never mutated in place.
type Subject struct {
	Name        string  `json:"name"`
	Priority    string  `json:"priority"`
	Difficulty  string  `json:"difficulty"`
	IsWeak      bool    `json:"is_weak"`
	ExamDate    string  `json:"exam_date"` // YYYY-MM-DD
	HoursNeeded float64 `json:"hours_needed"`
}

type DailyTask struct {
	Subject       string  `json:"subject"`
	Topic         string  `json:"topic"`
	DurationHours float64 `json:"duration_hours"`
	TaskType      string  `json:"task_type"`
	Priority      string  `json:"priority"`
	Notes         string  `json:"notes"`
}

// DayPlan is one day of a weekly plan. TotalHours is trusted to equal the
// sum of task durations; it is a caller contract, not re-derived here.
type DayPlan struct {
	Date            string      `json:"date"` // YYYY-MM-DD, unique within a week
	Tasks           []DailyTask `json:"tasks"`
	TotalHours      float64     `json:"total_hours"`
	RestRecommended bool        `json:"rest_recommended"`
}

type WeeklyPlan struct {
	WeekNumber  int       `json:"week_number"`
	Days        []DayPlan `json:"days"`
	BurnoutRisk string    `json:"burnout_risk"`
}

// AdjustedPlan is the replacement for a single day, produced by the AI
// collaborator after a burnout assessment. Consumed exactly once.
type AdjustedPlan struct {
	OriginalHours float64     `json:"original_hours"`
	NewHours      float64     `json:"new_hours"`
	RemovedTasks  []string    `json:"removed_tasks"`
	ModifiedTasks []DailyTask `json:"modified_tasks"`
	RestDaysAdded int         `json:"rest_days_added"`
	Rationale     string      `json:"rationale"`
}

// UpcomingExam is the context an adjustment call carries about exam urgency.
type UpcomingExam struct {
	Subject   string `json:"subject"`
	DaysUntil int    `json:"days_until"`
}
