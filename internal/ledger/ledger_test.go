package ledger

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"planwise-backend/internal/store"
)

func newTestLedger() *Ledger {
	return New(store.New(store.NewMemoryMedium(), uuid.New()))
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	id := TaskID("OS", "Scheduling")

	baseline := l.ListCompleted(ctx, "2026-01-19")

	if done := l.Toggle(ctx, "2026-01-19", id); !done {
		t.Error("first toggle should mark completed")
	}
	if got := l.ListCompleted(ctx, "2026-01-19"); len(got) != 1 || got[0] != id {
		t.Errorf("ListCompleted = %v", got)
	}

	if done := l.Toggle(ctx, "2026-01-19", id); done {
		t.Error("second toggle should unmark")
	}
	if got := l.ListCompleted(ctx, "2026-01-19"); !reflect.DeepEqual(got, baseline) && len(got) != 0 {
		t.Errorf("double toggle did not restore baseline: %v", got)
	}
}

func TestToggleKeepsOtherEntries(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()

	a := TaskID("OS", "Scheduling")
	b := TaskID("Networks", "Routing")
	l.Toggle(ctx, "2026-01-19", a)
	l.Toggle(ctx, "2026-01-19", b)
	l.Toggle(ctx, "2026-01-19", a)

	got := l.ListCompleted(ctx, "2026-01-19")
	if len(got) != 1 || got[0] != b {
		t.Errorf("expected only %q to remain, got %v", b, got)
	}
}

func TestDatesAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger()
	id := TaskID("OS", "Memory")

	l.Toggle(ctx, "2026-01-19", id)
	if got := l.ListCompleted(ctx, "2026-01-20"); len(got) != 0 {
		t.Errorf("other date polluted: %v", got)
	}

	byDate := l.CompletedByDate(ctx, []string{"2026-01-19", "2026-01-20"})
	if len(byDate) != 1 || len(byDate["2026-01-19"]) != 1 {
		t.Errorf("CompletedByDate = %v", byDate)
	}
}
