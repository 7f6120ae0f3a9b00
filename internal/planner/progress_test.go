package planner

import (
	"testing"

	"planwise-backend/internal/models"
)

func progressPlan() models.WeeklyPlan {
	return models.WeeklyPlan{
		WeekNumber: 1,
		Days: []models.DayPlan{
			{Date: "2026-01-19", TotalHours: 4, Tasks: []models.DailyTask{
				{Subject: "OS", Topic: "Scheduling", DurationHours: 2},
				{Subject: "OS", Topic: "Memory", DurationHours: 2},
			}},
			{Date: "2026-01-20", TotalHours: 3, Tasks: []models.DailyTask{
				{Subject: "Networks", Topic: "Routing", DurationHours: 3},
			}},
		},
	}
}

func TestWeeklyProgressTwoSources(t *testing.T) {
	plan := progressPlan()
	history := []models.MoodEntry{
		{Date: "2026-01-18", ActualHours: 5}, // before the window, ignored
		{Date: "2026-01-19", ActualHours: 2},
		{Date: "2026-01-20", ActualHours: 1}, // last day inclusive
	}
	completed := map[string][]string{
		"2026-01-19": {TaskID("OS", "Scheduling")},
	}

	p := WeeklyProgress(plan, history, completed)

	if p.PlannedHours != 7 {
		t.Errorf("PlannedHours = %v, want 7", p.PlannedHours)
	}
	if p.CheckinHours != 3 {
		t.Errorf("CheckinHours = %v, want 3", p.CheckinHours)
	}
	if p.TaskHours != 2 {
		t.Errorf("TaskHours = %v, want 2", p.TaskHours)
	}
	if p.CompletedHours != 5 {
		t.Errorf("CompletedHours = %v, want 5", p.CompletedHours)
	}
	want := 100 * 5.0 / 7.0
	if p.ProgressPercent != want {
		t.Errorf("ProgressPercent = %v, want %v", p.ProgressPercent, want)
	}
}

func TestWeeklyProgressClampsAt100(t *testing.T) {
	plan := progressPlan()
	history := []models.MoodEntry{
		{Date: "2026-01-19", ActualHours: 50},
	}
	completed := map[string][]string{
		"2026-01-19": {TaskID("OS", "Scheduling"), TaskID("OS", "Memory")},
		"2026-01-20": {TaskID("Networks", "Routing")},
	}

	p := WeeklyProgress(plan, history, completed)
	if p.ProgressPercent != 100 {
		t.Errorf("ProgressPercent = %v, want clamp at 100", p.ProgressPercent)
	}
	// The raw hour signals still over-report; only the percent clamps.
	if p.CompletedHours != 57 {
		t.Errorf("CompletedHours = %v, want 57", p.CompletedHours)
	}
}

func TestWeeklyProgressZeroPlanned(t *testing.T) {
	plan := models.WeeklyPlan{Days: []models.DayPlan{{Date: "2026-01-19"}}}
	p := WeeklyProgress(plan, []models.MoodEntry{{Date: "2026-01-19", ActualHours: 3}}, nil)
	if p.ProgressPercent != 0 {
		t.Errorf("ProgressPercent = %v, want 0 for zero planned hours", p.ProgressPercent)
	}
}

func TestWeeklyProgressEmptyPlan(t *testing.T) {
	p := WeeklyProgress(models.WeeklyPlan{}, nil, nil)
	if p.ProgressPercent != 0 || p.CompletedHours != 0 {
		t.Errorf("empty plan should report zero progress, got %+v", p)
	}
}

func TestWeeklyProgressUnmarkedTasksDontCount(t *testing.T) {
	plan := progressPlan()
	p := WeeklyProgress(plan, nil, map[string][]string{
		"2026-01-20": {TaskID("OS", "Scheduling")}, // marked on the wrong date
	})
	if p.TaskHours != 0 {
		t.Errorf("TaskHours = %v, want 0 for mismatched date", p.TaskHours)
	}
}
