// Package ledger tracks which plan tasks the user has ticked off, one set
// per date. A task is identified by its (subject, topic) join key.
package ledger

import (
	"context"

	"planwise-backend/internal/planner"
	"planwise-backend/internal/store"
)

type Ledger struct {
	store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// TaskID is the ledger identity of a plan task.
func TaskID(subject, topic string) string {
	return planner.TaskID(subject, topic)
}

// Toggle adds the task id to the date's completed set if absent and
// removes it if present. It is its own inverse. Returns true when the id
// is completed after the call.
func (l *Ledger) Toggle(ctx context.Context, date, taskID string) bool {
	current := l.store.CompletedTasks(ctx, date)

	next := make([]string, 0, len(current)+1)
	removed := false
	for _, id := range current {
		if id == taskID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, taskID)
	}

	l.store.SetCompletedTasks(ctx, date, next)
	return !removed
}

// ListCompleted returns the completed task ids for one date, reflecting
// the store at read time — a toggle is immediately visible.
func (l *Ledger) ListCompleted(ctx context.Context, date string) []string {
	return l.store.CompletedTasks(ctx, date)
}

// CompletedByDate collects the completed sets for every given date, the
// shape the progress aggregator consumes.
func (l *Ledger) CompletedByDate(ctx context.Context, dates []string) map[string][]string {
	out := make(map[string][]string, len(dates))
	for _, date := range dates {
		if ids := l.store.CompletedTasks(ctx, date); len(ids) > 0 {
			out[date] = ids
		}
	}
	return out
}
