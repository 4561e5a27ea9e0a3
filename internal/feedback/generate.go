// Package feedback implements the scoring pipeline: a single evaluator call
// over a finished session's transcript and code submission.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/prompts"
	"github.com/jonathan/mock-interview/internal/schemas"
	"github.com/jonathan/mock-interview/internal/types"
)

// Service invokes the evaluator role. Stateless; concurrent calls are
// independent.
type Service struct {
	gen       *agents.Generator
	evaluator agents.Role
}

// NewService creates the feedback service.
func NewService(gen *agents.Generator) *Service {
	return &Service{
		gen:       gen,
		evaluator: agents.EvaluatorRole(),
	}
}

// GenerateFeedback evaluates a completed interview. Code and language are
// required; an empty transcript is allowed (a silent candidate is still a
// scoreable session). The result is schema-validated: out-of-range scores are
// rejected, never clamped.
func (s *Service) GenerateFeedback(ctx context.Context, transcript []types.TranscriptEntry, code, language string) (*types.FeedbackResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &InvalidInputError{Field: "code"}
	}
	if strings.TrimSpace(language) == "" {
		return nil, &InvalidInputError{Field: "language"}
	}

	if transcript == nil {
		transcript = []types.TranscriptEntry{}
	}
	serialized, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transcript: %w", err)
	}

	prompt := prompts.Format(
		prompts.MustGet("feedback.json", "evaluate-request"),
		map[string]string{
			"Language":   language,
			"Code":       code,
			"Transcript": string(serialized),
		},
	)

	var result types.FeedbackResult
	if err := s.gen.Generate(ctx, s.evaluator, prompt, schemas.FeedbackResult, &result); err != nil {
		return nil, fmt.Errorf("evaluation: %w", err)
	}

	return &result, nil
}
