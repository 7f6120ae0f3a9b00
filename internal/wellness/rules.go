package wellness

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"planwise-backend/internal/models"
)

// RuleBasedAssessment scores burnout from the mood history without AI.
// Weighted signals sum into a 0-100 score; thresholds map the score to a
// risk level and canned recommendations.
func RuleBasedAssessment(history []models.MoodEntry) *models.BurnoutAssessment {
	var signals []string
	score := 0

	recent := history
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	allLow := len(recent) > 0
	for _, e := range recent {
		if e.MoodScore > 2 {
			allLow = false
			break
		}
	}
	if allLow {
		signals = append(signals, "Last 3 days show consistent 'Tired' or 'Burned out' mood")
		score += 30
	}

	if len(history) > 0 {
		var sum int
		for _, e := range history {
			sum += e.MoodScore
		}
		avg := float64(sum) / float64(len(history))
		if avg < 2.5 {
			signals = append(signals, fmt.Sprintf("Average mood is low (%.1f/4)", avg))
			score += 15
		}
	}

	overworkDays := 0
	lowFocusDays := 0
	skippedDays := 0
	for _, e := range history {
		if e.ActualHours > e.PlannedHours {
			overworkDays++
		}
		if e.FocusLevel == models.FocusLow {
			lowFocusDays++
		}
		if e.ActualHours < e.PlannedHours*0.7 {
			skippedDays++
		}
	}
	if overworkDays >= 3 {
		signals = append(signals, fmt.Sprintf("Exceeded planned hours on %d days - overworking pattern detected", overworkDays))
		score += 25
	}
	if lowFocusDays >= 3 {
		signals = append(signals, fmt.Sprintf("Low focus reported for %d days - concentration declining", lowFocusDays))
		score += 20
	}
	if skippedDays >= 2 {
		signals = append(signals, fmt.Sprintf("Significantly reduced or skipped study on %d days - possible demotivation", skippedDays))
		score += 15
	}

	if score > 100 {
		score = 100
	}

	var level string
	var recs []string
	switch {
	case score >= 75:
		level = models.RiskCritical
		recs = []string{
			"Take 2 full rest days immediately",
			"Resume with 50% reduced study load",
			"Consider talking to a counselor or mentor",
			"Focus only on essential exam preparation",
		}
	case score >= 50:
		level = models.RiskHigh
		recs = []string{
			"Reduce daily study load by 40%",
			"Add a full rest day this week",
			"Focus only on high-priority subjects",
			"Ensure 8 hours of sleep daily",
		}
	case score >= 25:
		level = models.RiskMedium
		recs = []string{
			"Consider reducing daily load by 20%",
			"Add more breaks between study sessions",
			"Try the Pomodoro technique (25 min work, 5 min break)",
			"Monitor your stress levels closely",
		}
	default:
		level = models.RiskLow
		recs = []string{
			"Keep up the good work!",
			"Your current pace appears sustainable",
			"Continue monitoring your wellbeing",
		}
	}

	if len(signals) == 0 {
		signals = []string{"No significant burnout signals detected"}
	}

	return &models.BurnoutAssessment{
		RiskLevel:        level,
		RiskScore:        score,
		Signals:          signals,
		Recommendations:  recs,
		ShouldAdjustPlan: score >= 50,
	}
}

var priorityScore = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// RuleBasedAdjustment reduces one day's plan without AI. The reduction
// depth follows the risk level; tasks are kept highest-keep-score first
// until the reduced budget is filled, the rest are removed.
func RuleBasedAdjustment(day models.DayPlan, riskLevel string, exams []models.UpcomingExam) *models.AdjustedPlan {
	var reduction float64
	restDays := 0
	durationScale := 1.0
	switch riskLevel {
	case models.RiskCritical:
		reduction, restDays, durationScale = 0.50, 2, 0.5
	case models.RiskHigh:
		reduction, restDays, durationScale = 0.40, 1, 0.6
	case models.RiskMedium:
		reduction, durationScale = 0.20, 0.8
	}

	targetHours := day.TotalHours * (1 - reduction)

	urgent := make(map[string]bool)
	for _, exam := range exams {
		if exam.DaysUntil <= 3 {
			urgent[exam.Subject] = true
		}
	}

	type scored struct {
		score int
		task  models.DailyTask
	}
	tasks := make([]scored, 0, len(day.Tasks))
	for _, task := range day.Tasks {
		score := priorityScore[task.Priority] * 15
		if urgent[task.Subject] {
			score += 50
		}
		tasks = append(tasks, scored{score: score, task: task})
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].score > tasks[j].score })

	var modified []models.DailyTask
	var removed []string
	var allocated float64

	for _, st := range tasks {
		task := st.task
		label := task.Subject + " – " + task.Topic

		if allocated >= targetHours {
			removed = append(removed, label)
			continue
		}

		newDuration := math.Max(0.5, round1(task.DurationHours*durationScale))

		// 10% buffer so a slightly oversized task still fits.
		if allocated+newDuration > targetHours*1.1 {
			removed = append(removed, label)
			continue
		}

		task.DurationHours = newDuration
		task.Notes = fmt.Sprintf("Reduced from %gh due to %s burnout risk", st.task.DurationHours, riskLevel)
		modified = append(modified, task)
		allocated += newDuration
	}

	newHours := round1(allocated)

	var b strings.Builder
	fmt.Fprintf(&b, "Adjusted plan due to %s burnout risk. ", riskLevel)
	fmt.Fprintf(&b, "Reduced workload from %gh to %gh (%.0f%% reduction). ", day.TotalHours, newHours, reduction*100)
	if len(removed) > 0 {
		fmt.Fprintf(&b, "Removed %d low-priority tasks. ", len(removed))
	}
	if restDays > 0 {
		fmt.Fprintf(&b, "Added %d rest day(s) for recovery. ", restDays)
	}
	b.WriteString("Focus on sustainable learning pace.")

	return &models.AdjustedPlan{
		OriginalHours: day.TotalHours,
		NewHours:      newHours,
		RemovedTasks:  removed,
		ModifiedTasks: modified,
		RestDaysAdded: restDays,
		Rationale:     b.String(),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
