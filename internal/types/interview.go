// Package types defines the shared data structures exchanged between the
// generation pipelines, the HTTP boundary, and the session transport layer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultLanguage is used when a session request does not name one.
const DefaultLanguage = "python"

// InterviewRequest describes one interview-setup request. Company may be
// empty, which yields a generic (company-agnostic) problem. Language falls
// back to DefaultLanguage when empty.
type InterviewRequest struct {
	Company  string `json:"company" validate:"max=200"`
	Language string `json:"language" validate:"max=50"`
}

// Validate validates the InterviewRequest using the validator.
func (r *InterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// InterviewerGuide is the hidden reference guide produced by the question
// designer. It is handed verbatim to the starter-code stage and to the
// realtime interviewer agent, never to the candidate.
type InterviewerGuide struct {
	Guide string `json:"interviewer_problem_reference_guide"`
}

// CandidateArtifact is the candidate-facing output of the starter-code
// stage. ProblemDescription is formatted as comments in the target language;
// StarterCode is raw source with no markdown fence.
type CandidateArtifact struct {
	ProblemDescription string `json:"text_based_problem_description_given_to_user"`
	StarterCode        string `json:"starter_code"`
}

// SessionArtifactBundle is the complete output of the content-generation
// pipeline: the hidden guide plus the editor-prefill string (description and
// starter code already concatenated).
type SessionArtifactBundle struct {
	InterviewerGuide   string `json:"interviewer_problem_reference_guide"`
	ProblemDescription string `json:"text_based_problem_description_given_to_user"`
	StarterCode        string `json:"starter_code,omitempty"`
}

// SessionMetadata is the wire shape embedded in the room access token and
// parsed by the downstream realtime agent. The three key names are a
// cross-service contract; do not rename them without a coordinated change.
type SessionMetadata struct {
	ProgrammingLanguage string `json:"programming_language"`
	ProblemDescription  string `json:"text_based_problem_description_given_to_user"`
	InterviewerGuide    string `json:"interviewer_problem_reference_guide"`
}
