package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"google.golang.org/api/option"

	"planwise-backend/internal/models"
	"planwise-backend/internal/planner"
	"planwise-backend/internal/wellness"
)

// GeminiService is the AI collaborator behind plan generation, burnout
// checking and plan adjustment. Every call is synchronous; when Gemini
// fails or returns unparseable output, the rule-based fallbacks take over
// so the caller still gets a usable result.
type GeminiService struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	rateChan chan struct{} // Token bucket
}

func NewGeminiService(apiKey string, concurrentReqs int) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.3)
	model.SetTopP(0.95)

	rateChan := make(chan struct{}, concurrentReqs)
	for i := 0; i < concurrentReqs; i++ {
		rateChan <- struct{}{}
	}

	return &GeminiService{
		client:   client,
		model:    model,
		rateChan: rateChan,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// acquireRate blocks until a rate slot is available
func (s *GeminiService) acquireRate(ctx context.Context) error {
	select {
	case <-s.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for Gemini rate slot")
	}
}

func (s *GeminiService) releaseRate() {
	s.rateChan <- struct{}{}
}

// GeneratePlan asks Gemini for a 7-day plan and falls back to the
// deterministic planner when the model fails. The store is never touched
// here; persisting the result is the caller's job.
func (s *GeminiService) GeneratePlan(ctx context.Context, subjects []models.Subject, availableHoursPerDay float64, fixedCommitments map[string]string, startDate string) (*models.WeeklyPlan, error) {
	if err := s.acquireRate(ctx); err != nil {
		return nil, err
	}
	defer s.releaseRate()

	prompt := buildPlanPrompt(subjects, availableHoursPerDay, fixedCommitments, startDate)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini plan generation failed, using fallback: %v", err)
		plan := planner.FallbackPlan(subjects, availableHoursPerDay, startDate)
		return &plan, nil
	}

	var plan models.WeeklyPlan
	if err := decodeObject(extractText(resp), &plan); err != nil || len(plan.Days) == 0 {
		log.Printf("Gemini plan response unusable, using fallback: %v", err)
		fallback := planner.FallbackPlan(subjects, availableHoursPerDay, startDate)
		return &fallback, nil
	}
	if plan.BurnoutRisk == "" {
		plan.BurnoutRisk = models.RiskLow
	}

	return &plan, nil
}

// CheckBurnout scores the mood history. Gemini errors degrade to the
// rule-based scorer; an error escapes only when scoring is impossible.
func (s *GeminiService) CheckBurnout(ctx context.Context, history []models.MoodEntry) (*models.BurnoutAssessment, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("mood history is empty")
	}
	if err := s.acquireRate(ctx); err != nil {
		return nil, err
	}
	defer s.releaseRate()

	prompt := buildBurnoutPrompt(history)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini burnout check failed, using rule-based scorer: %v", err)
		return wellness.RuleBasedAssessment(history), nil
	}

	var assessment models.BurnoutAssessment
	if err := decodeObject(extractText(resp), &assessment); err != nil || assessment.RiskLevel == "" {
		log.Printf("Gemini burnout response unusable, using rule-based scorer: %v", err)
		return wellness.RuleBasedAssessment(history), nil
	}
	if assessment.RiskScore < 0 {
		assessment.RiskScore = 0
	}
	if assessment.RiskScore > 100 {
		assessment.RiskScore = 100
	}

	return &assessment, nil
}

// AdjustPlan asks Gemini to rework one day for the given risk level,
// falling back to the rule-based adjuster.
func (s *GeminiService) AdjustPlan(ctx context.Context, day models.DayPlan, riskLevel string, exams []models.UpcomingExam) (*models.AdjustedPlan, error) {
	if err := s.acquireRate(ctx); err != nil {
		return nil, err
	}
	defer s.releaseRate()

	prompt := buildAdjustPrompt(day, riskLevel, exams)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini adjustment failed, using rule-based adjuster: %v", err)
		return wellness.RuleBasedAdjustment(day, riskLevel, exams), nil
	}

	var adjusted models.AdjustedPlan
	if err := decodeObject(extractText(resp), &adjusted); err != nil || adjusted.ModifiedTasks == nil {
		log.Printf("Gemini adjustment response unusable, using rule-based adjuster: %v", err)
		return wellness.RuleBasedAdjustment(day, riskLevel, exams), nil
	}

	return &adjusted, nil
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

// decodeObject strips markdown fences and decodes one JSON object,
// recovering the outermost braces when the model adds prose around them.
func decodeObject(raw string, out interface{}) error {
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start >= 0 && end > start {
			return json.Unmarshal([]byte(raw[start:end+1]), out)
		}
		return err
	}
	return nil
}

func buildPlanPrompt(subjects []models.Subject, availableHoursPerDay float64, fixedCommitments map[string]string, startDate string) string {
	var b strings.Builder

	b.WriteString("You are an expert study planner for students preparing for exams.\n\n")
	b.WriteString("Rules you MUST follow:\n")
	b.WriteString("- High priority + Hard difficulty = schedule MORE time and EARLIER\n")
	b.WriteString("- Weak areas = break into smaller chunks (max 1.5 hours per session)\n")
	b.WriteString("- Never schedule more than 3 different subjects in one day\n")
	b.WriteString("- If 5+ consecutive days of study, recommend a rest day\n")
	b.WriteString("- Never create tasks shorter than 30 minutes or longer than 3 hours\n")
	b.WriteString("- Apply spaced repetition: Learn on day 1, Revise on day 3, Practice on day 7 for Hard and Medium topics\n\n")

	fmt.Fprintf(&b, "Create a detailed 7-day study plan starting from %s.\n", startDate)
	fmt.Fprintf(&b, "Maximum study hours per day: %g\n", availableHoursPerDay)
	if len(fixedCommitments) > 0 {
		b.WriteString("Fixed commitments (busy hours):\n")
		for day, hours := range fixedCommitments {
			fmt.Fprintf(&b, "- %s: %s\n", day, hours)
		}
	}

	b.WriteString("\nSUBJECT DETAILS:\n")
	for _, s := range subjects {
		fmt.Fprintf(&b, "%s:\n  - Priority: %s\n  - Difficulty: %s\n  - Is a weak area: %t\n  - Exam date: %s\n  - Total hours needed: %g\n",
			s.Name, s.Priority, s.Difficulty, s.IsWeak, s.ExamDate, s.HoursNeeded)
	}

	b.WriteString(`
CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.

JSON schema:
{"week_number": 1, "days": [{"date": "YYYY-MM-DD", "tasks": [{"subject": "string", "topic": "string", "duration_hours": 1.5, "task_type": "Learn"|"Revise"|"Practice", "priority": "High"|"Medium"|"Low", "notes": "string"}], "total_hours": 1.5, "rest_recommended": false}], "burnout_risk": "Low"|"Medium"|"High"}
`)

	return b.String()
}

func buildBurnoutPrompt(history []models.MoodEntry) string {
	var b strings.Builder

	b.WriteString("You are a wellness advisor. Analyze mood data to detect burnout.\n\n")
	b.WriteString("BURNOUT SIGNALS:\n")
	b.WriteString("1. Mood: 3+ days \"Tired\" or worse = HIGH RISK\n")
	b.WriteString("2. Overload: Actual > Planned for 3+ days = Overworking\n")
	b.WriteString("3. Low focus + High hours = Ineffective studying\n")
	b.WriteString("4. Skipped sessions = Demotivation\n\n")
	b.WriteString("RISK LEVELS: Low (0-25), Medium (26-50), High (51-75), Critical (76-100)\n\n")

	fmt.Fprintf(&b, "Analyze %d days of mood data:\n\n", len(history))
	for i, e := range history {
		completion := 0.0
		if e.PlannedHours > 0 {
			completion = e.ActualHours / e.PlannedHours * 100
		}
		fmt.Fprintf(&b, "Day %d: %s (%d/4) | Planned: %gh, Actual: %gh (%.0f%%) | Focus: %s\n",
			i+1, e.Mood, e.MoodScore, e.PlannedHours, e.ActualHours, completion, e.FocusLevel)
	}

	b.WriteString(`
CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.

JSON schema:
{"risk_level": "Low"|"Medium"|"High"|"Critical", "risk_score": 72, "signals": ["string"], "recommendations": ["string"], "should_adjust_plan": true}
`)

	return b.String()
}

func buildAdjustPrompt(day models.DayPlan, riskLevel string, exams []models.UpcomingExam) string {
	var b strings.Builder

	b.WriteString("You are a study plan optimizer focused on sustainable learning.\n\n")
	b.WriteString("Adjust study plans based on burnout level:\n")
	b.WriteString("- Medium risk: 20% reduction, remove lowest priority tasks first\n")
	b.WriteString("- High risk: 40% reduction, add 1 full rest day, keep only critical exam prep\n")
	b.WriteString("- Critical risk: 50%+ reduction, 2 consecutive rest days, keep only imminent exams\n")
	b.WriteString("Always keep tasks for subjects with exams within 3 days.\n\n")

	fmt.Fprintf(&b, "CURRENT STUDY PLAN (%s):\nTotal hours: %g\n\nTasks scheduled:\n", day.Date, day.TotalHours)
	for i, task := range day.Tasks {
		fmt.Fprintf(&b, "%d. %s - %s\n   Type: %s | Duration: %gh | Priority: %s\n",
			i+1, task.Subject, task.Topic, task.TaskType, task.DurationHours, task.Priority)
	}

	fmt.Fprintf(&b, "\nBURNOUT LEVEL: %s\n\nUPCOMING EXAMS:\n", riskLevel)
	for _, exam := range exams {
		fmt.Fprintf(&b, "- %s: %d days away\n", exam.Subject, exam.DaysUntil)
	}

	b.WriteString(`
CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.

JSON schema:
{"original_hours": 5.0, "new_hours": 3.0, "removed_tasks": ["string"], "modified_tasks": [{"subject": "string", "topic": "string", "duration_hours": 1.0, "task_type": "Learn"|"Revise"|"Practice", "priority": "High"|"Medium"|"Low", "notes": "string"}], "rest_days_added": 1, "rationale": "string"}
`)

	return b.String()
}
