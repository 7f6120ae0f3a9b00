package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"planwise-backend/internal/models"
)

func newTestStore() *Store {
	return New(NewMemoryMedium(), uuid.New())
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	subjects := []models.Subject{
		{Name: "OS", Priority: models.PriorityHigh, Difficulty: models.DifficultyHard, IsWeak: true, ExamDate: "2026-02-01", HoursNeeded: 10},
	}
	if !s.SetSubjects(ctx, subjects) {
		t.Fatal("SetSubjects failed")
	}
	got, ok := s.Subjects(ctx)
	if !ok {
		t.Fatal("Subjects absent after write")
	}
	if !reflect.DeepEqual(got, subjects) {
		t.Errorf("Subjects round-trip mismatch: %+v", got)
	}

	plan := &models.WeeklyPlan{
		WeekNumber:  1,
		BurnoutRisk: models.RiskLow,
		Days: []models.DayPlan{
			{Date: "2026-01-21", TotalHours: 2, Tasks: []models.DailyTask{
				{Subject: "OS", Topic: "Scheduling", DurationHours: 2, TaskType: models.TaskLearn, Priority: models.PriorityHigh},
			}},
		},
	}
	if !s.SetWeeklyPlan(ctx, plan) {
		t.Fatal("SetWeeklyPlan failed")
	}
	gotPlan, ok := s.WeeklyPlan(ctx)
	if !ok || !reflect.DeepEqual(gotPlan, plan) {
		t.Errorf("WeeklyPlan round-trip mismatch: %+v", gotPlan)
	}

	assessment := &models.BurnoutAssessment{
		RiskLevel:        models.RiskHigh,
		RiskScore:        60,
		Signals:          []string{"low mood"},
		Recommendations:  []string{"rest"},
		ShouldAdjustPlan: true,
	}
	s.SetLastAssessment(ctx, assessment)
	gotAssessment, ok := s.LastAssessment(ctx)
	if !ok || !reflect.DeepEqual(gotAssessment, assessment) {
		t.Errorf("LastAssessment round-trip mismatch: %+v", gotAssessment)
	}

	s.SetAvailableHours(ctx, 5)
	if hours, ok := s.AvailableHours(ctx); !ok || hours != 5 {
		t.Errorf("AvailableHours = %v, %v", hours, ok)
	}

	commitments := map[string]string{"Monday": "9-11"}
	s.SetFixedCommitments(ctx, commitments)
	if got, ok := s.FixedCommitments(ctx); !ok || !reflect.DeepEqual(got, commitments) {
		t.Errorf("FixedCommitments = %v, %v", got, ok)
	}
}

func TestStoreAbsentReads(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	if _, ok := s.Subjects(ctx); ok {
		t.Error("expected absent subjects")
	}
	if _, ok := s.WeeklyPlan(ctx); ok {
		t.Error("expected absent plan")
	}
	if _, ok := s.LastAssessment(ctx); ok {
		t.Error("expected absent assessment")
	}
	if s.IsOnboarded(ctx) {
		t.Error("expected not onboarded")
	}
	if history := s.MoodHistory(ctx); len(history) != 0 {
		t.Errorf("expected empty history, got %d entries", len(history))
	}
}

func TestMoodHistoryCap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	dates := []string{
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04",
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
	}
	for _, d := range dates {
		s.AppendMoodEntry(ctx, models.MoodEntry{Date: d, Mood: models.MoodOkay, MoodScore: 3})
	}

	history := s.MoodHistory(ctx)
	if len(history) != MoodHistoryCap {
		t.Fatalf("expected %d entries, got %d", MoodHistoryCap, len(history))
	}
	// Appending an 8th evicts exactly the oldest.
	if history[0].Date != "2026-01-02" {
		t.Errorf("expected oldest entry 2026-01-02, got %s", history[0].Date)
	}
	if history[len(history)-1].Date != "2026-01-08" {
		t.Errorf("expected newest entry 2026-01-08, got %s", history[len(history)-1].Date)
	}
}

func TestClearAllForcesReOnboarding(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	s.SetSubjects(ctx, []models.Subject{{Name: "OS", ExamDate: "2026-02-01", HoursNeeded: 10}})
	s.SetWeeklyPlan(ctx, &models.WeeklyPlan{WeekNumber: 1, Days: []models.DayPlan{{Date: "2026-01-21"}}})
	s.SetCompletedTasks(ctx, "2026-01-21", []string{"OS – Scheduling"})
	s.SetOnboarded(ctx, true)

	s.ClearAll(ctx)

	if s.IsOnboarded(ctx) {
		t.Error("still onboarded after ClearAll")
	}
	if _, ok := s.Subjects(ctx); ok {
		t.Error("subjects survived ClearAll")
	}
	if _, ok := s.WeeklyPlan(ctx); ok {
		t.Error("plan survived ClearAll")
	}
	if tasks := s.CompletedTasks(ctx, "2026-01-21"); len(tasks) != 0 {
		t.Error("completed tasks survived ClearAll")
	}
}

// deadMedium simulates an unavailable backing medium.
type deadMedium struct{}

func (deadMedium) Get(context.Context, string) (string, bool) { return "", false }
func (deadMedium) Set(context.Context, string, string) bool   { return false }
func (deadMedium) Delete(context.Context, string) bool        { return false }

func TestUnavailableMediumDegrades(t *testing.T) {
	ctx := context.Background()
	s := New(deadMedium{}, uuid.New())

	if s.SetOnboarded(ctx, true) {
		t.Error("write to dead medium reported success")
	}
	if s.IsOnboarded(ctx) {
		t.Error("read from dead medium returned data")
	}
	if _, ok := s.WeeklyPlan(ctx); ok {
		t.Error("plan read from dead medium returned data")
	}
	// Must not panic.
	s.ClearAll(ctx)
}
