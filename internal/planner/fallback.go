package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"planwise-backend/internal/models"
)

const dateLayout = "2006-01-02"

var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

var difficultyMult = map[string]float64{
	models.DifficultyEasy:   0.8,
	models.DifficultyMedium: 1.0,
	models.DifficultyHard:   1.2,
}

// FallbackPlan builds a deterministic 7-day plan when the AI collaborator
// cannot. High-priority subjects with near exams get scheduled first, day
// seven is a rest day, and no day exceeds the daily hour budget.
func FallbackPlan(subjects []models.Subject, availableHoursPerDay float64, startDate string) models.WeeklyPlan {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		start = time.Now()
	}

	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		if priorityRank[sorted[i].Priority] != priorityRank[sorted[j].Priority] {
			return priorityRank[sorted[i].Priority] < priorityRank[sorted[j].Priority]
		}
		return sorted[i].ExamDate < sorted[j].ExamDate
	})

	days := make([]models.DayPlan, 0, 7)
	for dayNum := 0; dayNum < 7; dayNum++ {
		date := start.AddDate(0, 0, dayNum).Format(dateLayout)

		// Day seven is a rest day.
		if dayNum == 6 {
			days = append(days, models.DayPlan{
				Date:            date,
				Tasks:           []models.DailyTask{},
				RestRecommended: true,
			})
			continue
		}

		var tasks []models.DailyTask
		var hoursUsed float64

		for _, subject := range sorted {
			if hoursUsed >= availableHoursPerDay {
				break
			}

			daysUntilExam := daysBetween(start, subject.ExamDate)
			urgency := math.Max(0.5, 1.0-float64(daysUntilExam)/30)

			mult, ok := difficultyMult[subject.Difficulty]
			if !ok {
				mult = 1.0
			}

			slot := (subject.HoursNeeded / 7) * mult * urgency
			slot = math.Min(slot, availableHoursPerDay-hoursUsed)
			slot = math.Min(slot, 3.0) // max 3 hours per subject per day
			if slot < 0.5 {
				continue // sessions under 30 minutes are not worth scheduling
			}
			slot = round1(slot)

			taskType, topicSuffix := phaseForDay(dayNum)

			notes := fmt.Sprintf("Focus on %s difficulty topics", strings.ToLower(subject.Difficulty))
			if subject.IsWeak {
				notes = "Weak area – " + notes
			}

			tasks = append(tasks, models.DailyTask{
				Subject:       subject.Name,
				Topic:         fmt.Sprintf("%s - %s", subject.Name, topicSuffix),
				DurationHours: slot,
				TaskType:      taskType,
				Priority:      subject.Priority,
				Notes:         notes,
			})
			hoursUsed += slot
		}

		days = append(days, models.DayPlan{
			Date:       date,
			Tasks:      tasks,
			TotalHours: round1(hoursUsed),
		})
	}

	return models.WeeklyPlan{
		WeekNumber:  1,
		Days:        days,
		BurnoutRisk: overallRisk(days, availableHoursPerDay),
	}
}

func phaseForDay(dayNum int) (taskType, topicSuffix string) {
	switch {
	case dayNum < 2:
		return models.TaskLearn, "Introduction & Core Concepts"
	case dayNum < 4:
		return models.TaskRevise, "Review & Practice"
	default:
		return models.TaskPractice, "Problem Solving & Mock Tests"
	}
}

func overallRisk(days []models.DayPlan, availableHoursPerDay float64) string {
	var total float64
	studyDays := 0
	for _, d := range days {
		if d.RestRecommended {
			continue
		}
		total += d.TotalHours
		studyDays++
	}
	if studyDays == 0 || availableHoursPerDay <= 0 {
		return models.RiskLow
	}

	avg := total / float64(studyDays)
	switch {
	case avg > availableHoursPerDay*0.95:
		return models.RiskHigh
	case avg > availableHoursPerDay*0.8:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func daysBetween(start time.Time, date string) int {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	return int(d.Sub(start).Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
