package planner

import (
	"testing"

	"planwise-backend/internal/models"
)

func TestFallbackPlanShape(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Networks", Priority: models.PriorityLow, Difficulty: models.DifficultyEasy, ExamDate: "2026-02-10", HoursNeeded: 7},
		{Name: "OS", Priority: models.PriorityHigh, Difficulty: models.DifficultyHard, IsWeak: true, ExamDate: "2026-02-01", HoursNeeded: 10},
	}

	plan := FallbackPlan(subjects, 5, "2026-01-19")

	if plan.WeekNumber != 1 {
		t.Errorf("WeekNumber = %d, want 1", plan.WeekNumber)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(plan.Days))
	}
	if plan.Days[0].Date != "2026-01-19" || plan.Days[6].Date != "2026-01-25" {
		t.Errorf("date range wrong: %s .. %s", plan.Days[0].Date, plan.Days[6].Date)
	}

	last := plan.Days[6]
	if !last.RestRecommended || len(last.Tasks) != 0 || last.TotalHours != 0 {
		t.Errorf("day 7 should be an empty rest day: %+v", last)
	}

	for _, day := range plan.Days {
		if day.TotalHours > 5 {
			t.Errorf("day %s exceeds hour budget: %v", day.Date, day.TotalHours)
		}
		for _, task := range day.Tasks {
			if task.DurationHours < 0.5 || task.DurationHours > 3 {
				t.Errorf("task duration out of range: %v", task.DurationHours)
			}
		}
	}

	// High-priority subject is scheduled first each study day.
	if len(plan.Days[0].Tasks) == 0 || plan.Days[0].Tasks[0].Subject != "OS" {
		t.Errorf("expected OS scheduled first, got %+v", plan.Days[0].Tasks)
	}
}

func TestFallbackPlanTaskPhases(t *testing.T) {
	subjects := []models.Subject{
		{Name: "OS", Priority: models.PriorityHigh, Difficulty: models.DifficultyMedium, ExamDate: "2026-02-01", HoursNeeded: 14},
	}
	plan := FallbackPlan(subjects, 4, "2026-01-19")

	wantTypes := []string{
		models.TaskLearn, models.TaskLearn,
		models.TaskRevise, models.TaskRevise,
		models.TaskPractice, models.TaskPractice,
	}
	for i, want := range wantTypes {
		tasks := plan.Days[i].Tasks
		if len(tasks) == 0 {
			t.Fatalf("day %d has no tasks", i+1)
		}
		if tasks[0].TaskType != want {
			t.Errorf("day %d task type = %s, want %s", i+1, tasks[0].TaskType, want)
		}
	}
}
