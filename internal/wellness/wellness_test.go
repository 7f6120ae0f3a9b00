package wellness

import (
	"testing"

	"planwise-backend/internal/models"
)

func TestShouldAssessRequiresThreeEntries(t *testing.T) {
	var history []models.MoodEntry
	for i := 0; i < 5; i++ {
		if got, want := ShouldAssess(history), len(history) >= 3; got != want {
			t.Errorf("ShouldAssess with %d entries = %v, want %v", len(history), got, want)
		}
		history = append(history, models.MoodEntry{Mood: models.MoodOkay, MoodScore: 3})
	}
}

func TestRuleBasedAssessmentBurnedOutPattern(t *testing.T) {
	// Three consecutive burned-out check-ins, hours well under plan.
	history := []models.MoodEntry{
		{Date: "2026-01-19", Mood: models.MoodBurnedOut, MoodScore: 1, PlannedHours: 5, ActualHours: 1, FocusLevel: models.FocusLow},
		{Date: "2026-01-20", Mood: models.MoodBurnedOut, MoodScore: 1, PlannedHours: 5, ActualHours: 1.5, FocusLevel: models.FocusLow},
		{Date: "2026-01-21", Mood: models.MoodBurnedOut, MoodScore: 1, PlannedHours: 5, ActualHours: 0.5, FocusLevel: models.FocusLow},
	}

	a := RuleBasedAssessment(history)

	if !AlertWorthy(a) {
		t.Errorf("expected alert-worthy risk, got %s (%d)", a.RiskLevel, a.RiskScore)
	}
	if !a.ShouldAdjustPlan {
		t.Error("expected should_adjust_plan")
	}
	if len(a.Signals) == 0 {
		t.Error("expected diagnostic signals")
	}
}

func TestRuleBasedAssessmentHealthyPattern(t *testing.T) {
	history := []models.MoodEntry{
		{Mood: models.MoodEnergized, MoodScore: 4, PlannedHours: 4, ActualHours: 4, FocusLevel: models.FocusHigh},
		{Mood: models.MoodOkay, MoodScore: 3, PlannedHours: 4, ActualHours: 3.5, FocusLevel: models.FocusHigh},
		{Mood: models.MoodEnergized, MoodScore: 4, PlannedHours: 4, ActualHours: 4, FocusLevel: models.FocusMedium},
	}

	a := RuleBasedAssessment(history)

	if a.RiskLevel != models.RiskLow {
		t.Errorf("risk = %s, want Low", a.RiskLevel)
	}
	if a.ShouldAdjustPlan {
		t.Error("healthy pattern should not suggest adjustment")
	}
	if AlertWorthy(a) {
		t.Error("Low risk must not alert")
	}
}

func TestRuleBasedAssessmentScoreClamped(t *testing.T) {
	// Every signal firing at once must still clamp to 100.
	history := make([]models.MoodEntry, 7)
	for i := range history {
		history[i] = models.MoodEntry{MoodScore: 1, PlannedHours: 2, ActualHours: 5, FocusLevel: models.FocusLow}
	}
	// Mix in under-reporting days to trip the skipped-session signal too.
	history[0].ActualHours = 0.5
	history[1].ActualHours = 0.5

	a := RuleBasedAssessment(history)
	if a.RiskScore > 100 || a.RiskScore < 0 {
		t.Errorf("score out of range: %d", a.RiskScore)
	}
}

func TestTopRecommendations(t *testing.T) {
	a := &models.BurnoutAssessment{Recommendations: []string{"a", "b", "c", "d"}}
	if got := TopRecommendations(a); len(got) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(got))
	}
	short := &models.BurnoutAssessment{Recommendations: []string{"a"}}
	if got := TopRecommendations(short); len(got) != 1 {
		t.Errorf("expected 1 recommendation, got %d", len(got))
	}
	if got := TopRecommendations(nil); got != nil {
		t.Errorf("expected nil for nil assessment, got %v", got)
	}
}

func TestRuleBasedAdjustmentHighRisk(t *testing.T) {
	day := models.DayPlan{
		Date:       "2026-01-20",
		TotalHours: 5,
		Tasks: []models.DailyTask{
			{Subject: "OS", Topic: "Scheduling", DurationHours: 2, Priority: models.PriorityHigh},
			{Subject: "Networks", Topic: "Routing", DurationHours: 2, Priority: models.PriorityLow},
			{Subject: "Databases", Topic: "Indexing", DurationHours: 1, Priority: models.PriorityMedium},
		},
	}
	exams := []models.UpcomingExam{{Subject: "OS", DaysUntil: 2}}

	adj := RuleBasedAdjustment(day, models.RiskHigh, exams)

	if adj.OriginalHours != 5 {
		t.Errorf("OriginalHours = %v", adj.OriginalHours)
	}
	if adj.NewHours >= day.TotalHours {
		t.Errorf("NewHours %v not reduced from %v", adj.NewHours, day.TotalHours)
	}
	if adj.RestDaysAdded != 1 {
		t.Errorf("RestDaysAdded = %d, want 1", adj.RestDaysAdded)
	}
	if len(adj.ModifiedTasks) == 0 {
		t.Fatal("expected surviving tasks")
	}
	// Urgent-exam subject survives the cut and comes first.
	if adj.ModifiedTasks[0].Subject != "OS" {
		t.Errorf("expected OS kept first, got %s", adj.ModifiedTasks[0].Subject)
	}
	for _, task := range adj.ModifiedTasks {
		if task.DurationHours < 0.5 {
			t.Errorf("task shrunk below 30 minutes: %v", task.DurationHours)
		}
	}
	if adj.Rationale == "" {
		t.Error("expected a rationale")
	}
}

func TestRuleBasedAdjustmentCriticalAddsTwoRestDays(t *testing.T) {
	day := models.DayPlan{Date: "2026-01-20", TotalHours: 4, Tasks: []models.DailyTask{
		{Subject: "OS", Topic: "Memory", DurationHours: 4, Priority: models.PriorityHigh},
	}}

	adj := RuleBasedAdjustment(day, models.RiskCritical, nil)
	if adj.RestDaysAdded != 2 {
		t.Errorf("RestDaysAdded = %d, want 2", adj.RestDaysAdded)
	}
	if adj.NewHours > day.TotalHours*0.6 {
		t.Errorf("critical reduction too shallow: %v", adj.NewHours)
	}
}
