// Package interview implements the content-generation pipeline: two strictly
// sequential agent calls that turn a (company, language) request into the
// session artifact bundle.
package interview

import (
	"context"
	"fmt"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/prompts"
	"github.com/jonathan/mock-interview/internal/schemas"
	"github.com/jonathan/mock-interview/internal/types"
)

// GenerateOptions describes one interview-setup request.
type GenerateOptions struct {
	// Company steers problem selection. Empty means a generic interview.
	Company string
	// Language is the target programming language. Empty falls back to
	// types.DefaultLanguage.
	Language string
	// ResearchDigest is optional background on the company's engineering
	// domain, appended to the briefing prompt when present.
	ResearchDigest string
}

// Service sequences the question-designer and starter-code roles. It holds
// no mutable state; concurrent calls are fully independent.
type Service struct {
	gen      *agents.Generator
	designer agents.Role
	platform agents.Role
}

// NewService creates the content-generation service. timeLimitMinutes sets
// the designed problem difficulty (zero means the default).
func NewService(gen *agents.Generator, timeLimitMinutes int) *Service {
	return &Service{
		gen:      gen,
		designer: agents.QuestionDesignerRole(timeLimitMinutes),
		platform: agents.StarterCodeRole(),
	}
}

// GenerateInterview produces the artifact bundle for one session.
//
// Stage 1 asks the question designer for the interviewer guide; stage 2
// hands the entire guide text to the starter-code role so the scaffolding
// matches the intended solution shape. Stage 2 never runs if stage 1 fails,
// and any failure fails the whole call with no partial bundle. Retry policy
// belongs to the caller.
func (s *Service) GenerateInterview(ctx context.Context, opts GenerateOptions) (*types.SessionArtifactBundle, error) {
	language := opts.Language
	if language == "" {
		language = types.DefaultLanguage
	}

	var guide types.InterviewerGuide
	if err := s.gen.Generate(ctx, s.designer, s.briefingPrompt(opts), schemas.InterviewerGuide, &guide); err != nil {
		return nil, fmt.Errorf("briefing stage: %w", err)
	}

	codePrompt := prompts.Format(
		prompts.MustGet("generation.json", "starter-code-request"),
		map[string]string{
			"Language": language,
			"Guide":    guide.Guide,
		},
	)

	var artifact types.CandidateArtifact
	if err := s.gen.Generate(ctx, s.platform, codePrompt, schemas.CandidateArtifact, &artifact); err != nil {
		return nil, fmt.Errorf("starter-code stage: %w", err)
	}

	description := StripCodeFence(artifact.ProblemDescription)
	starterCode := StripCodeFence(artifact.StarterCode)

	if description == "" {
		return nil, &EmptyArtifactError{Field: "text_based_problem_description_given_to_user"}
	}

	return &types.SessionArtifactBundle{
		InterviewerGuide:   guide.Guide,
		ProblemDescription: ComposePrefill(description, starterCode),
		StarterCode:        starterCode,
	}, nil
}

// briefingPrompt builds the stage-1 prompt, degrading to the generic
// company-agnostic variant when no company is named.
func (s *Service) briefingPrompt(opts GenerateOptions) string {
	var prompt string
	if opts.Company == "" {
		prompt = prompts.MustGet("generation.json", "briefing-request-generic")
	} else {
		prompt = prompts.Format(
			prompts.MustGet("generation.json", "briefing-request"),
			map[string]string{"Company": opts.Company},
		)
	}

	if opts.ResearchDigest != "" {
		context := prompts.Format(
			prompts.MustGet("generation.json", "briefing-research-context"),
			map[string]string{"Digest": opts.ResearchDigest},
		)
		prompt = prompt + "\n\n" + context
	}

	return prompt
}
