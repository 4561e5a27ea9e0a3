package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/types"
)

type scriptedClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (c *scriptedClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", errors.New("not used")
}

func (c *scriptedClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier, _ llm.Effort) (string, error) {
	c.calls++
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.response, nil
}

func (c *scriptedClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (c *scriptedClient) Close() error                  { return nil }

const validFeedbackJSON = `{
	"technical_score": 6,
	"technical_feedback": "Correct but O(n^2).",
	"communication_score": 8,
	"communication_feedback": "Narrated throughout.",
	"problem_solving_score": 7,
	"problem_solving_feedback": "Considered edge cases when prompted.",
	"overall_summary": "A solid mid-level performance.",
	"strengths": ["clear narration", "correct solution", "responded to hints"],
	"improvements": ["complexity analysis", "proactive edge cases", "testing habits"]
}`

func newTestService(client *scriptedClient) *Service {
	return NewService(agents.NewGenerator(client))
}

func TestGenerateFeedback_Success(t *testing.T) {
	client := &scriptedClient{response: validFeedbackJSON}
	svc := newTestService(client)

	transcript := []types.TranscriptEntry{
		{Role: types.TranscriptRoleUser, Content: "I'll use a hash map"},
		{Role: types.TranscriptRoleAssistant, Content: "Sounds good, why?"},
	}
	result, err := svc.GenerateFeedback(context.Background(), transcript, "def two_sum(nums, target): pass", "python")
	require.NoError(t, err)

	assert.Equal(t, 6, result.TechnicalScore)
	assert.Equal(t, 8, result.CommunicationScore)
	assert.Equal(t, 7, result.ProblemSolvingScore)
	assert.NotEmpty(t, result.OverallSummary)
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Improvements)

	// Prompt embeds language, verbatim code, and the serialized transcript
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Language: python")
	assert.Contains(t, client.prompts[0], "def two_sum(nums, target): pass")
	assert.Contains(t, client.prompts[0], `"I'll use a hash map"`)
}

func TestGenerateFeedback_EmptyTranscriptStillInvokesEvaluator(t *testing.T) {
	client := &scriptedClient{response: validFeedbackJSON}
	svc := newTestService(client)

	result, err := svc.GenerateFeedback(context.Background(), []types.TranscriptEntry{}, "pass", "python")
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls, "transcript length is not a precondition")
	assert.NotNil(t, result)
}

func TestGenerateFeedback_MissingInputsRejectedBeforeGeneration(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		field    string
	}{
		{name: "empty code", code: "", language: "python", field: "code"},
		{name: "whitespace code", code: "   ", language: "python", field: "code"},
		{name: "empty language", code: "pass", language: "", field: "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{response: validFeedbackJSON}
			svc := newTestService(client)

			result, err := svc.GenerateFeedback(context.Background(), nil, tt.code, tt.language)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, 0, client.calls, "no generation call may happen for malformed input")

			var invalidErr *InvalidInputError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, tt.field, invalidErr.Field)
		})
	}
}

func TestGenerateFeedback_OutOfRangeScoreRejected(t *testing.T) {
	client := &scriptedClient{response: `{
		"technical_score": 12,
		"technical_feedback": "x",
		"communication_score": 5,
		"communication_feedback": "x",
		"problem_solving_score": 5,
		"problem_solving_feedback": "x",
		"overall_summary": "x",
		"strengths": [], "improvements": []
	}`}
	svc := newTestService(client)

	result, err := svc.GenerateFeedback(context.Background(), nil, "pass", "python")
	require.Error(t, err)
	assert.Nil(t, result, "out-of-range scores must be rejected, not clamped")

	var contractErr *agents.ContractError
	assert.ErrorAs(t, err, &contractErr)
}

func TestGenerateFeedback_ProviderFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("timeout")}
	svc := newTestService(client)

	result, err := svc.GenerateFeedback(context.Background(), nil, "pass", "python")
	require.Error(t, err)
	assert.Nil(t, result)

	var genErr *agents.GenerationError
	assert.ErrorAs(t, err, &genErr)
}
