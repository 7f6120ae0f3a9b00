package planner

import "planwise-backend/internal/models"

// Progress is the weekly completion picture. CheckinHours (self-reported)
// and TaskHours (checklist) are two independent, possibly overlapping
// signals; they are surfaced separately and summed without reconciliation.
// That double counting is a documented simplification, not a defect.
type Progress struct {
	PlannedHours    float64 `json:"planned_hours"`
	CheckinHours    float64 `json:"checkin_hours"`
	TaskHours       float64 `json:"task_hours"`
	CompletedHours  float64 `json:"completed_hours"`
	ProgressPercent float64 `json:"progress_percent"`
}

// WeeklyProgress computes completion for a plan from the mood history and
// the per-date completed-task sets. completedByDate maps a plan date to
// the task identities marked done on that date.
func WeeklyProgress(plan models.WeeklyPlan, history []models.MoodEntry, completedByDate map[string][]string) Progress {
	var p Progress
	if len(plan.Days) == 0 {
		return p
	}

	// ISO dates compare lexically, so the window check is a string compare.
	first := plan.Days[0].Date
	last := plan.Days[len(plan.Days)-1].Date
	for _, entry := range history {
		if entry.Date >= first && entry.Date <= last {
			p.CheckinHours += entry.ActualHours
		}
	}

	for _, day := range plan.Days {
		p.PlannedHours += day.TotalHours

		done := make(map[string]bool, len(completedByDate[day.Date]))
		for _, id := range completedByDate[day.Date] {
			done[id] = true
		}
		for _, task := range day.Tasks {
			if done[TaskID(task.Subject, task.Topic)] {
				p.TaskHours += task.DurationHours
			}
		}
	}

	p.CompletedHours = p.CheckinHours + p.TaskHours

	if p.PlannedHours > 0 {
		p.ProgressPercent = 100 * p.CompletedHours / p.PlannedHours
		if p.ProgressPercent > 100 {
			p.ProgressPercent = 100
		}
	}

	return p
}

// TaskID is the join key between a plan task and the completion ledger.
// Two tasks sharing subject and topic collide; accepted limitation.
func TaskID(subject, topic string) string {
	return subject + " – " + topic
}
