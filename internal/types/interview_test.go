package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionMetadata_WireKeys(t *testing.T) {
	meta := SessionMetadata{
		ProgrammingLanguage: "python",
		ProblemDescription:  "# Two Sum",
		InterviewerGuide:    "### PROBLEM SUMMARY",
	}

	data, err := json.Marshal(meta)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// These key names are parsed by the downstream realtime agent.
	for _, key := range []string{
		"programming_language",
		"text_based_problem_description_given_to_user",
		"interviewer_problem_reference_guide",
	} {
		_, ok := raw[key]
		assert.True(t, ok, "missing wire key %q", key)
	}
	assert.Len(t, raw, 3)
}

func TestInterviewRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     InterviewRequest
		wantErr bool
	}{
		{
			name: "both fields set",
			req:  InterviewRequest{Company: "Stripe", Language: "python"},
		},
		{
			name: "empty request is valid (generic interview)",
			req:  InterviewRequest{},
		},
		{
			name:    "company too long",
			req:     InterviewRequest{Company: strings.Repeat("x", 201)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedbackResult_JSONRoundTrip(t *testing.T) {
	input := `{
		"technical_score": 7,
		"technical_feedback": "Solid implementation.",
		"communication_score": 8,
		"communication_feedback": "Thought out loud consistently.",
		"problem_solving_score": 6,
		"problem_solving_feedback": "Missed one edge case.",
		"overall_summary": "Strong performance overall.",
		"strengths": ["clear naming", "used a hash map", "asked clarifying questions"],
		"improvements": ["edge cases", "complexity analysis", "testing"]
	}`

	var result FeedbackResult
	require.NoError(t, json.Unmarshal([]byte(input), &result))

	assert.Equal(t, 7, result.TechnicalScore)
	assert.Equal(t, 8, result.CommunicationScore)
	assert.Equal(t, 6, result.ProblemSolvingScore)
	assert.Len(t, result.Strengths, 3)
	assert.Len(t, result.Improvements, 3)
	assert.NotEmpty(t, result.OverallSummary)
}
