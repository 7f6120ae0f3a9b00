// Package planner holds the pure plan computations: splicing an adjusted
// day back into a week, aggregating weekly progress, and the deterministic
// fallback generator used when the AI collaborator is unavailable.
package planner

import "planwise-backend/internal/models"

// MergeAdjustedDay returns a new weekly plan in which the day matching
// date carries the adjusted tasks and hours; every other day, the week
// number and the plan-level burnout risk pass through unchanged. A date
// not present in the week makes this a no-op, not an error — callers are
// responsible for picking an existing day.
//
// Callers that persist the result must clear the consumed burnout
// assessment only after the merged plan is durably stored.
func MergeAdjustedDay(week models.WeeklyPlan, adjusted models.AdjustedPlan, date string) models.WeeklyPlan {
	merged := week
	merged.Days = make([]models.DayPlan, len(week.Days))
	copy(merged.Days, week.Days)

	for i, day := range merged.Days {
		if day.Date != date {
			continue
		}
		day.Tasks = adjusted.ModifiedTasks
		day.TotalHours = adjusted.NewHours
		day.RestRecommended = adjusted.RestDaysAdded > 0
		merged.Days[i] = day
		break
	}

	return merged
}
