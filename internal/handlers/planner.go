package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"planwise-backend/internal/ledger"
	"planwise-backend/internal/middleware"
	"planwise-backend/internal/models"
	"planwise-backend/internal/planner"
	"planwise-backend/internal/store"
	"planwise-backend/internal/wellness"
)

const dateLayout = "2006-01-02"

// PlannerAI is the AI collaborator contract the planner surface consumes.
// GeminiService is the production implementation.
type PlannerAI interface {
	GeneratePlan(ctx context.Context, subjects []models.Subject, availableHoursPerDay float64, fixedCommitments map[string]string, startDate string) (*models.WeeklyPlan, error)
	CheckBurnout(ctx context.Context, history []models.MoodEntry) (*models.BurnoutAssessment, error)
	AdjustPlan(ctx context.Context, day models.DayPlan, riskLevel string, exams []models.UpcomingExam) (*models.AdjustedPlan, error)
}

// AlertSink receives alert-worthy assessments for live delivery.
type AlertSink interface {
	Publish(ctx context.Context, userID uuid.UUID, msg models.WSMessage)
}

// BurnoutMailer mails an alert-worthy assessment to the user.
type BurnoutMailer interface {
	SendBurnoutAlert(to, fullName, riskLevel string, recommendations []string) error
}

// UserDirectory resolves a user id to its profile, for alert delivery.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type PlannerHandler struct {
	medium store.Medium
	ai     PlannerAI
	alerts AlertSink
	mailer BurnoutMailer
	users  UserDirectory
	now    func() time.Time
}

func NewPlannerHandler(medium store.Medium, ai PlannerAI, alerts AlertSink, mailer BurnoutMailer, users UserDirectory) *PlannerHandler {
	return &PlannerHandler{
		medium: medium,
		ai:     ai,
		alerts: alerts,
		mailer: mailer,
		users:  users,
		now:    time.Now,
	}
}

func (h *PlannerHandler) storeFor(r *http.Request) *store.Store {
	return store.New(h.medium, middleware.GetUserID(r.Context()))
}

func (h *PlannerHandler) today() string {
	return h.now().Format(dateLayout)
}

// Onboarding generates and stores a fresh weekly plan from the submitted
// profile. The onboarded flag is flipped only after every record is
// stored, so a crash mid-way leaves the user un-onboarded rather than
// half-configured.
func (h *PlannerHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	var req models.OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResp(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	fields := validateOnboarding(req)
	if len(fields) > 0 {
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	if req.StartDate == "" {
		req.StartDate = h.today()
	}

	plan, err := h.ai.GeneratePlan(r.Context(), req.Subjects, req.AvailableHoursPerDay, req.FixedCommitments, req.StartDate)
	if err != nil {
		errorResp(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Plan generation is unavailable. Please try again.")
		return
	}

	s := h.storeFor(r)
	ctx := r.Context()
	s.SetSubjects(ctx, req.Subjects)
	s.SetAvailableHours(ctx, req.AvailableHoursPerDay)
	s.SetFixedCommitments(ctx, req.FixedCommitments)
	s.SetWeeklyPlan(ctx, plan)
	s.SetOnboarded(ctx, true)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"plan": plan,
	})
}

func (h *PlannerHandler) Status(w http.ResponseWriter, r *http.Request) {
	s := h.storeFor(r)
	writeJSON(w, http.StatusOK, map[string]bool{
		"onboarded": s.IsOnboarded(r.Context()),
	})
}

func (h *PlannerHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	s := h.storeFor(r)
	plan, ok := s.WeeklyPlan(r.Context())
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No study plan found. Complete onboarding first.")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Checkin records a mood entry and, once enough history has accumulated,
// runs a burnout assessment. Alert-worthy assessments are pushed over the
// websocket channel and mailed.
func (h *PlannerHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	var req models.CheckinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResp(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	fields := make(map[string]string)
	if models.MoodScore(req.Mood) == 0 {
		fields["mood"] = "Mood must be one of: Energized, Okay, Tired, Burned out"
	}
	switch req.FocusLevel {
	case models.FocusHigh, models.FocusMedium, models.FocusLow:
	default:
		fields["focus_level"] = "Focus level must be one of: High, Medium, Low"
	}
	if req.ActualHours < 0 {
		fields["actual_hours"] = "Actual hours cannot be negative"
	}
	if len(fields) > 0 {
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	if req.Date == "" {
		req.Date = h.today()
	}

	s := h.storeFor(r)
	ctx := r.Context()

	if req.PlannedHours == 0 {
		if plan, ok := s.WeeklyPlan(ctx); ok {
			for _, day := range plan.Days {
				if day.Date == req.Date {
					req.PlannedHours = day.TotalHours
					break
				}
			}
		}
	}

	entry := models.MoodEntry{
		Date:         req.Date,
		Mood:         req.Mood,
		MoodScore:    models.MoodScore(req.Mood),
		PlannedHours: req.PlannedHours,
		ActualHours:  req.ActualHours,
		FocusLevel:   req.FocusLevel,
	}
	history := s.AppendMoodEntry(ctx, entry)

	resp := map[string]interface{}{
		"entry":      entry,
		"assessment": nil,
	}

	if wellness.ShouldAssess(history) {
		assessment, err := h.ai.CheckBurnout(ctx, history)
		if err != nil || assessment == nil {
			log.Printf("burnout check failed, keeping prior assessment: %v", err)
		} else {
			s.SetLastAssessment(ctx, assessment)
			resp["assessment"] = assessment

			if wellness.AlertWorthy(assessment) {
				h.deliverAlert(ctx, middleware.GetUserID(ctx), assessment)
			}
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *PlannerHandler) deliverAlert(ctx context.Context, userID uuid.UUID, assessment *models.BurnoutAssessment) {
	alert := models.BurnoutAlert{
		RiskLevel:        assessment.RiskLevel,
		RiskScore:        assessment.RiskScore,
		Recommendations:  wellness.TopRecommendations(assessment),
		ShouldAdjustPlan: assessment.ShouldAdjustPlan,
	}

	h.alerts.Publish(ctx, userID, models.WSMessage{
		Type:    "burnout_alert",
		Payload: alert,
	})

	if h.mailer == nil || h.users == nil {
		return
	}
	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("failed to resolve user for burnout email: %v", err)
		return
	}
	go h.mailer.SendBurnoutAlert(user.Email, user.FullName, alert.RiskLevel, alert.Recommendations)
}

func (h *PlannerHandler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	s := h.storeFor(r)
	assessment, ok := s.LastAssessment(r.Context())
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No burnout assessment available yet.")
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

// Adjust reworks one plan day for the current burnout level. The merged
// plan is stored before the assessment is cleared, so a failed store
// leaves the assessment consumable.
func (h *PlannerHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req models.AdjustRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	if req.Date == "" {
		req.Date = h.today()
	}

	s := h.storeFor(r)
	ctx := r.Context()

	assessment, ok := s.LastAssessment(ctx)
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No burnout assessment to act on.")
		return
	}
	if !assessment.ShouldAdjustPlan {
		errorResp(w, r, http.StatusConflict, "CONFLICT", "Current burnout risk does not warrant a plan adjustment.")
		return
	}

	plan, ok := s.WeeklyPlan(ctx)
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No study plan found. Complete onboarding first.")
		return
	}

	var day *models.DayPlan
	for i := range plan.Days {
		if plan.Days[i].Date == req.Date {
			day = &plan.Days[i]
			break
		}
	}
	if day == nil {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "The requested date is not part of the current plan.")
		return
	}

	subjects, _ := s.Subjects(ctx)
	exams := upcomingExams(subjects, req.Date)

	adjusted, err := h.ai.AdjustPlan(ctx, *day, assessment.RiskLevel, exams)
	if err != nil {
		errorResp(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Plan adjustment is unavailable. Please try again.")
		return
	}

	merged := planner.MergeAdjustedDay(*plan, *adjusted, req.Date)
	if !s.SetWeeklyPlan(ctx, &merged) {
		errorResp(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store the adjusted plan")
		return
	}
	s.ClearAssessment(ctx)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"adjustment": adjusted,
		"plan":       merged,
	})
}

func (h *PlannerHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	s := h.storeFor(r)
	ctx := r.Context()

	plan, ok := s.WeeklyPlan(ctx)
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No study plan found. Complete onboarding first.")
		return
	}

	dates := make([]string, 0, len(plan.Days))
	for _, day := range plan.Days {
		dates = append(dates, day.Date)
	}

	l := ledger.New(s)
	progress := planner.WeeklyProgress(*plan, s.MoodHistory(ctx), l.CompletedByDate(ctx, dates))

	writeJSON(w, http.StatusOK, progress)
}

func (h *PlannerHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResp(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	fields := make(map[string]string)
	if req.Date == "" {
		fields["date"] = "Date is required"
	}
	if req.Subject == "" {
		fields["subject"] = "Subject is required"
	}
	if req.Topic == "" {
		fields["topic"] = "Topic is required"
	}
	if len(fields) > 0 {
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	l := ledger.New(h.storeFor(r))
	taskID := ledger.TaskID(req.Subject, req.Topic)
	completed := l.Toggle(r.Context(), req.Date, taskID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"task_id":         taskID,
		"completed":       completed,
		"completed_tasks": l.ListCompleted(r.Context(), req.Date),
	})
}

// ListTasks returns the plan day for a date with per-task completion state.
func (h *PlannerHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.today()
	}

	s := h.storeFor(r)
	ctx := r.Context()

	plan, ok := s.WeeklyPlan(ctx)
	if !ok {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "No study plan found. Complete onboarding first.")
		return
	}

	var day *models.DayPlan
	for i := range plan.Days {
		if plan.Days[i].Date == date {
			day = &plan.Days[i]
			break
		}
	}
	if day == nil {
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", "The requested date is not part of the current plan.")
		return
	}

	done := make(map[string]bool)
	for _, id := range ledger.New(s).ListCompleted(ctx, date) {
		done[id] = true
	}

	type taskState struct {
		models.DailyTask
		TaskID    string `json:"task_id"`
		Completed bool   `json:"completed"`
	}

	tasks := make([]taskState, 0, len(day.Tasks))
	for _, t := range day.Tasks {
		id := ledger.TaskID(t.Subject, t.Topic)
		tasks = append(tasks, taskState{DailyTask: t, TaskID: id, Completed: done[id]})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":             day.Date,
		"tasks":            tasks,
		"total_hours":      day.TotalHours,
		"rest_recommended": day.RestRecommended,
	})
}

// Reset wipes every planner record for the user, forcing re-onboarding.
func (h *PlannerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.storeFor(r).ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func validateOnboarding(req models.OnboardingRequest) map[string]string {
	fields := make(map[string]string)

	if len(req.Subjects) == 0 {
		fields["subjects"] = "At least one subject is required"
	}
	if req.AvailableHoursPerDay <= 0 {
		fields["available_hours_per_day"] = "Available hours per day must be positive"
	} else if req.AvailableHoursPerDay > 16 {
		fields["available_hours_per_day"] = "Available hours per day cannot exceed 16"
	}
	if req.StartDate != "" {
		if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
			fields["start_date"] = "Start date must be YYYY-MM-DD"
		}
	}

	for _, subject := range req.Subjects {
		if subject.Name == "" {
			fields["subjects"] = "Every subject needs a name"
			break
		}
		switch subject.Priority {
		case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		default:
			fields["subjects"] = "Priority must be one of: High, Medium, Low"
		}
		switch subject.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			fields["subjects"] = "Difficulty must be one of: Easy, Medium, Hard"
		}
		if subject.ExamDate != "" {
			if _, err := time.Parse(dateLayout, subject.ExamDate); err != nil {
				fields["subjects"] = "Exam dates must be YYYY-MM-DD"
			}
		}
		if _, bad := fields["subjects"]; bad {
			break
		}
	}

	return fields
}

// upcomingExams lists exams on or after the reference date, closest first
// by virtue of subject order being preserved.
func upcomingExams(subjects []models.Subject, fromDate string) []models.UpcomingExam {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return nil
	}

	var exams []models.UpcomingExam
	for _, s := range subjects {
		if s.ExamDate == "" {
			continue
		}
		examDay, err := time.Parse(dateLayout, s.ExamDate)
		if err != nil {
			continue
		}
		days := int(examDay.Sub(from).Hours() / 24)
		if days < 0 {
			continue
		}
		exams = append(exams, models.UpcomingExam{Subject: s.Name, DaysUntil: days})
	}
	return exams
}
