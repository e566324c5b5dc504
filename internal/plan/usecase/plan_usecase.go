package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"mba-copilot-backend/internal/plan/dto"
)

// ErrMissingAPIKey is returned before any outbound call when no Gemini
// credential is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is missing")

// weeklyPlanPrompt is the instruction document the task list is appended to.
// The output format is requested, never validated: the response stays opaque
// prose all the way to the caller.
const weeklyPlanPrompt = `You are an AI planner for an MBA student. You will receive a list of tasks with:
- title
- description
- category (academics, career, case_competition, personal)
- deadline
- effort_hours
- status

Create a realistic 7-day weekly plan. Distribute tasks wisely by priority, deadline, and workload.

Output strictly in Markdown with no tables or pipe characters. Use this structure:
## AI Weekly Plan
- Overview: one paragraph summary
- Dates: Monday through Sunday (include actual dates if provided)
- Daily plan (one section per day):
  - Day (e.g., Monday — Nov 25)
  - Focus: short summary
  - Tasks: bullet list; each item as "• Title (Xh) — short action"
  - Total effort: "Total: X hours"
- Weekly total effort at the end.`

// TextGenerator is the outbound language-model call. Implemented by
// pkg/gemini; mocked in tests.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// PlanUsecase turns a task list snapshot into one plan-generation request
type PlanUsecase interface {
	GeneratePlan(ctx context.Context, tasks []dto.PlanTask) (string, error)
}

// planUsecase implements PlanUsecase interface
type planUsecase struct {
	generator TextGenerator
	apiKey    string
}

// NewPlanUsecase creates a new instance of planUsecase
func NewPlanUsecase(generator TextGenerator, apiKey string) PlanUsecase {
	return &planUsecase{
		generator: generator,
		apiKey:    apiKey,
	}
}

// GeneratePlan performs exactly one outbound call per invocation. No retry,
// no caching, no local fallback plan.
func (u *planUsecase) GeneratePlan(ctx context.Context, tasks []dto.PlanTask) (string, error) {
	if u.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	prompt, err := BuildPrompt(tasks)
	if err != nil {
		return "", err
	}

	return u.generator.GenerateContent(ctx, prompt)
}

// BuildPrompt embeds the task list as pretty-printed JSON below the
// instruction document
func BuildPrompt(tasks []dto.PlanTask) (string, error) {
	if tasks == nil {
		tasks = []dto.PlanTask{}
	}
	encoded, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return "", err
	}
	return weeklyPlanPrompt + "\n\nTasks:\n" + string(encoded), nil
}
