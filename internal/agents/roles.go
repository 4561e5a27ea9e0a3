// Package agents defines the fixed generation roles used by the interview
// pipelines and the capability that turns a (role, prompt, schema) triple
// into validated structured output.
//
// Roles are immutable configuration: construct them once at process start
// and pass them into the orchestrators. Invoking the same role twice with
// the same prompt may yield different output (the model is probabilistic),
// but a role's instructions and model binding never change at runtime.
package agents

import (
	"strconv"

	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/prompts"
)

// Role is a fixed (instructions, model binding, effort) triple used to issue
// one kind of generation request.
type Role struct {
	ID           string
	Name         string
	Instructions string
	Tier         llm.ModelTier
	Effort       llm.Effort
}

// DefaultTimeLimitMinutes is the designed difficulty target for generated
// problems when no session time limit is configured.
const DefaultTimeLimitMinutes = 30

// QuestionDesignerRole returns the briefing role: it designs the interview
// problem and writes the hidden interviewer reference guide. Problem design
// determines session quality, so it binds the advanced tier at high effort.
func QuestionDesignerRole(timeLimitMinutes int) Role {
	if timeLimitMinutes <= 0 {
		timeLimitMinutes = DefaultTimeLimitMinutes
	}
	instructions := prompts.Format(
		prompts.MustGet("generation.json", "question-designer-instructions"),
		map[string]string{"Minutes": strconv.Itoa(timeLimitMinutes)},
	)
	return Role{
		ID:           "question-designer",
		Name:         "Question Designer",
		Instructions: instructions,
		Tier:         llm.TierAdvanced,
		Effort:       llm.EffortHigh,
	}
}

// StarterCodeRole returns the platform role: it turns the interviewer guide
// into candidate-facing content. Mechanical scaffolding work, so standard
// tier at low effort.
func StarterCodeRole() Role {
	return Role{
		ID:           "starter-code",
		Name:         "Starter Code",
		Instructions: prompts.MustGet("generation.json", "starter-code-instructions"),
		Tier:         llm.TierStandard,
		Effort:       llm.EffortLow,
	}
}

// EvaluatorRole returns the feedback role: it scores a finished transcript
// and code submission against the three-dimension rubric.
func EvaluatorRole() Role {
	return Role{
		ID:           "evaluator",
		Name:         "Feedback Evaluator",
		Instructions: prompts.MustGet("feedback.json", "evaluator-instructions"),
		Tier:         llm.TierStandard,
		Effort:       llm.EffortMedium,
	}
}
