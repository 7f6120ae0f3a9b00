package planner

import (
	"encoding/json"
	"reflect"
	"testing"

	"planwise-backend/internal/models"
)

func sampleWeek() models.WeeklyPlan {
	return models.WeeklyPlan{
		WeekNumber:  1,
		BurnoutRisk: models.RiskMedium,
		Days: []models.DayPlan{
			{Date: "2026-01-19", TotalHours: 4, Tasks: []models.DailyTask{
				{Subject: "OS", Topic: "Scheduling", DurationHours: 2, TaskType: models.TaskLearn, Priority: models.PriorityHigh},
				{Subject: "Networks", Topic: "Routing", DurationHours: 2, TaskType: models.TaskLearn, Priority: models.PriorityLow},
			}},
			{Date: "2026-01-20", TotalHours: 3, Tasks: []models.DailyTask{
				{Subject: "OS", Topic: "Memory", DurationHours: 3, TaskType: models.TaskRevise, Priority: models.PriorityHigh},
			}},
			{Date: "2026-01-21", TotalHours: 0, RestRecommended: true},
		},
	}
}

func TestMergeAdjustedDay(t *testing.T) {
	week := sampleWeek()
	before, _ := json.Marshal(week)

	adjusted := models.AdjustedPlan{
		OriginalHours: 4,
		NewHours:      2,
		RemovedTasks:  []string{"Networks – Routing"},
		ModifiedTasks: []models.DailyTask{
			{Subject: "OS", Topic: "Scheduling", DurationHours: 2, TaskType: models.TaskLearn, Priority: models.PriorityHigh, Notes: "Reduced"},
		},
		RestDaysAdded: 1,
	}

	merged := MergeAdjustedDay(week, adjusted, "2026-01-19")

	if merged.WeekNumber != week.WeekNumber || merged.BurnoutRisk != week.BurnoutRisk {
		t.Error("week metadata changed")
	}
	if len(merged.Days) != len(week.Days) {
		t.Fatalf("day count changed: %d", len(merged.Days))
	}
	for i, day := range merged.Days {
		if day.Date != week.Days[i].Date {
			t.Errorf("date sequence changed at %d: %s", i, day.Date)
		}
	}

	target := merged.Days[0]
	if target.TotalHours != 2 {
		t.Errorf("total_hours = %v, want 2", target.TotalHours)
	}
	if !target.RestRecommended {
		t.Error("rest_recommended should be true when rest_days_added > 0")
	}
	if !reflect.DeepEqual(target.Tasks, adjusted.ModifiedTasks) {
		t.Errorf("tasks not replaced: %+v", target.Tasks)
	}

	// Untouched days are byte-for-byte equal to the originals.
	for _, i := range []int{1, 2} {
		got, _ := json.Marshal(merged.Days[i])
		want, _ := json.Marshal(week.Days[i])
		if string(got) != string(want) {
			t.Errorf("day %d changed: %s", i, got)
		}
	}

	// The input plan itself is untouched.
	after, _ := json.Marshal(week)
	if string(before) != string(after) {
		t.Error("input plan mutated")
	}
}

func TestMergeAdjustedDayNoRestAdded(t *testing.T) {
	week := sampleWeek()
	adjusted := models.AdjustedPlan{NewHours: 2.5, ModifiedTasks: []models.DailyTask{}, RestDaysAdded: 0}

	merged := MergeAdjustedDay(week, adjusted, "2026-01-20")
	if merged.Days[1].RestRecommended {
		t.Error("rest_recommended should stay false when rest_days_added == 0")
	}
	if merged.Days[1].TotalHours != 2.5 {
		t.Errorf("total_hours = %v, want 2.5", merged.Days[1].TotalHours)
	}
}

func TestMergeAdjustedDayAbsentDate(t *testing.T) {
	week := sampleWeek()
	adjusted := models.AdjustedPlan{NewHours: 1, RestDaysAdded: 2}

	merged := MergeAdjustedDay(week, adjusted, "2026-03-01")

	got, _ := json.Marshal(merged)
	want, _ := json.Marshal(week)
	if string(got) != string(want) {
		t.Error("merge against absent date must be a no-op")
	}
}
