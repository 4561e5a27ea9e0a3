package types

// TranscriptEntry is one spoken utterance segment from the session, in
// chronological order as produced by the transcription layer.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript role values produced by the transcription layer.
const (
	TranscriptRoleUser      = "user"
	TranscriptRoleAssistant = "assistant"
)

// FeedbackResult is the structured evaluation of a completed interview.
// Scores are constrained to [1,10] by the output schema; a generation
// outside that range is rejected upstream, never clamped here.
type FeedbackResult struct {
	TechnicalScore         int      `json:"technical_score"`
	TechnicalFeedback      string   `json:"technical_feedback"`
	CommunicationScore     int      `json:"communication_score"`
	CommunicationFeedback  string   `json:"communication_feedback"`
	ProblemSolvingScore    int      `json:"problem_solving_score"`
	ProblemSolvingFeedback string   `json:"problem_solving_feedback"`
	OverallSummary         string   `json:"overall_summary"`
	Strengths              []string `json:"strengths"`
	Improvements           []string `json:"improvements"`
}
