package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"planwise-backend/internal/models"
)

// Record names. Each is one independently removable JSON record; completed
// task sets live under a per-date compound key so a single day can be read
// without loading the rest.
const (
	keySubjects         = "subjects"
	keyWeeklyPlan       = "weekly_plan"
	keyMoodHistory      = "mood_history"
	keyAvailableHours   = "available_hours"
	keyFixedCommitments = "fixed_commitments"
	keyLastAssessment   = "last_assessment"
	keyOnboarded        = "onboarded"
	completedPrefix     = "completed:"
)

// MoodHistoryCap is the FIFO bound on retained check-ins.
const MoodHistoryCap = 7

// Store owns every persisted planner record for one user. Other components
// receive copies and write results back through it; none holds a live
// reference into its state. It never returns errors: a failed medium
// degrades to absent reads and dropped writes.
type Store struct {
	medium Medium
	userID uuid.UUID
}

func New(medium Medium, userID uuid.UUID) *Store {
	return &Store{medium: medium, userID: userID}
}

func (s *Store) key(name string) string {
	return fmt.Sprintf("planner:%s:%s", s.userID, name)
}

func (s *Store) getJSON(ctx context.Context, name string, out interface{}) bool {
	raw, ok := s.medium.Get(ctx, s.key(name))
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *Store) setJSON(ctx context.Context, name string, v interface{}) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return s.medium.Set(ctx, s.key(name), string(raw))
}

// ── Subjects ──

func (s *Store) Subjects(ctx context.Context) ([]models.Subject, bool) {
	var subjects []models.Subject
	if !s.getJSON(ctx, keySubjects, &subjects) {
		return nil, false
	}
	return subjects, true
}

func (s *Store) SetSubjects(ctx context.Context, subjects []models.Subject) bool {
	return s.setJSON(ctx, keySubjects, subjects)
}

// ── Weekly plan ──

func (s *Store) WeeklyPlan(ctx context.Context) (*models.WeeklyPlan, bool) {
	var plan models.WeeklyPlan
	if !s.getJSON(ctx, keyWeeklyPlan, &plan) {
		return nil, false
	}
	return &plan, true
}

func (s *Store) SetWeeklyPlan(ctx context.Context, plan *models.WeeklyPlan) bool {
	return s.setJSON(ctx, keyWeeklyPlan, plan)
}

// ── Mood history ──

func (s *Store) MoodHistory(ctx context.Context) []models.MoodEntry {
	var history []models.MoodEntry
	s.getJSON(ctx, keyMoodHistory, &history)
	return history
}

// AppendMoodEntry appends a check-in, evicting the oldest entry once the
// history holds MoodHistoryCap entries. Returns the stored history.
func (s *Store) AppendMoodEntry(ctx context.Context, entry models.MoodEntry) []models.MoodEntry {
	history := append(s.MoodHistory(ctx), entry)
	if len(history) > MoodHistoryCap {
		history = history[len(history)-MoodHistoryCap:]
	}
	s.setJSON(ctx, keyMoodHistory, history)
	return history
}

// ── Onboarding inputs ──

func (s *Store) AvailableHours(ctx context.Context) (float64, bool) {
	var hours float64
	if !s.getJSON(ctx, keyAvailableHours, &hours) {
		return 0, false
	}
	return hours, true
}

func (s *Store) SetAvailableHours(ctx context.Context, hours float64) bool {
	return s.setJSON(ctx, keyAvailableHours, hours)
}

func (s *Store) FixedCommitments(ctx context.Context) (map[string]string, bool) {
	var commitments map[string]string
	if !s.getJSON(ctx, keyFixedCommitments, &commitments) {
		return nil, false
	}
	return commitments, true
}

func (s *Store) SetFixedCommitments(ctx context.Context, commitments map[string]string) bool {
	return s.setJSON(ctx, keyFixedCommitments, commitments)
}

// ── Burnout assessment ──

func (s *Store) LastAssessment(ctx context.Context) (*models.BurnoutAssessment, bool) {
	var assessment models.BurnoutAssessment
	if !s.getJSON(ctx, keyLastAssessment, &assessment) {
		return nil, false
	}
	return &assessment, true
}

func (s *Store) SetLastAssessment(ctx context.Context, assessment *models.BurnoutAssessment) bool {
	return s.setJSON(ctx, keyLastAssessment, assessment)
}

func (s *Store) ClearAssessment(ctx context.Context) bool {
	return s.medium.Delete(ctx, s.key(keyLastAssessment))
}

// ── Onboarding flag ──

func (s *Store) IsOnboarded(ctx context.Context) bool {
	var onboarded bool
	if !s.getJSON(ctx, keyOnboarded, &onboarded) {
		return false
	}
	return onboarded
}

func (s *Store) SetOnboarded(ctx context.Context, onboarded bool) bool {
	return s.setJSON(ctx, keyOnboarded, onboarded)
}

// ── Completed tasks (per-date) ──

func (s *Store) CompletedTasks(ctx context.Context, date string) []string {
	var tasks []string
	s.getJSON(ctx, completedPrefix+date, &tasks)
	return tasks
}

func (s *Store) SetCompletedTasks(ctx context.Context, date string, tasks []string) bool {
	return s.setJSON(ctx, completedPrefix+date, tasks)
}

// ── Reset ──

// ClearAll removes every known record. The onboarding flag goes first so a
// partial failure still forces the user back through onboarding.
func (s *Store) ClearAll(ctx context.Context) {
	s.medium.Delete(ctx, s.key(keyOnboarded))

	if plan, ok := s.WeeklyPlan(ctx); ok {
		for _, day := range plan.Days {
			s.medium.Delete(ctx, s.key(completedPrefix+day.Date))
		}
	}

	for _, name := range []string{
		keySubjects,
		keyWeeklyPlan,
		keyMoodHistory,
		keyAvailableHours,
		keyFixedCommitments,
		keyLastAssessment,
	} {
		s.medium.Delete(ctx, s.key(name))
	}
}
