package schemas

import (
	"errors"
	"testing"
)

func TestValidateOutput_InterviewerGuide(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid guide",
			doc:  `{"interviewer_problem_reference_guide": "### PROBLEM SUMMARY ..."}`,
		},
		{
			name:    "empty guide rejected",
			doc:     `{"interviewer_problem_reference_guide": ""}`,
			wantErr: true,
		},
		{
			name:    "missing field rejected",
			doc:     `{}`,
			wantErr: true,
		},
		{
			name:    "extra fields rejected",
			doc:     `{"interviewer_problem_reference_guide": "guide", "company": "Stripe"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutput(InterviewerGuide, tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutput_CandidateArtifact(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid artifact",
			doc:  `{"text_based_problem_description_given_to_user": "# Two Sum", "starter_code": "def two_sum(nums, target):\n    pass"}`,
		},
		{
			name:    "empty description rejected",
			doc:     `{"text_based_problem_description_given_to_user": "", "starter_code": "pass"}`,
			wantErr: true,
		},
		{
			name:    "missing starter code rejected",
			doc:     `{"text_based_problem_description_given_to_user": "# Two Sum"}`,
			wantErr: true,
		},
		{
			name: "empty starter code allowed",
			doc:  `{"text_based_problem_description_given_to_user": "# Two Sum", "starter_code": ""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutput(CandidateArtifact, tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutput() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutput_FeedbackScoreRange(t *testing.T) {
	valid := `{
		"technical_score": 7, "technical_feedback": "ok",
		"communication_score": 1, "communication_feedback": "ok",
		"problem_solving_score": 10, "problem_solving_feedback": "ok",
		"overall_summary": "solid",
		"strengths": ["a"], "improvements": ["b"]
	}`
	if err := ValidateOutput(FeedbackResult, valid); err != nil {
		t.Fatalf("valid feedback rejected: %v", err)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "score above range",
			doc: `{
				"technical_score": 11, "technical_feedback": "ok",
				"communication_score": 5, "communication_feedback": "ok",
				"problem_solving_score": 5, "problem_solving_feedback": "ok",
				"overall_summary": "s", "strengths": [], "improvements": []
			}`,
		},
		{
			name: "score below range",
			doc: `{
				"technical_score": 0, "technical_feedback": "ok",
				"communication_score": 5, "communication_feedback": "ok",
				"problem_solving_score": 5, "problem_solving_feedback": "ok",
				"overall_summary": "s", "strengths": [], "improvements": []
			}`,
		},
		{
			name: "non-integer score",
			doc: `{
				"technical_score": 7.5, "technical_feedback": "ok",
				"communication_score": 5, "communication_feedback": "ok",
				"problem_solving_score": 5, "problem_solving_feedback": "ok",
				"overall_summary": "s", "strengths": [], "improvements": []
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutput(FeedbackResult, tt.doc)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateOutput_SchemaLoadError(t *testing.T) {
	err := ValidateOutput(`{not json`, `{}`)
	if err == nil {
		t.Fatal("expected error for malformed schema")
	}
	var loadErr *SchemaLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *SchemaLoadError, got %T", err)
	}
}

func TestValidationError_MessageIncludesFields(t *testing.T) {
	err := ValidateOutput(InterviewerGuide, `{}`)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(validationErr.Errors) == 0 {
		t.Fatal("expected at least one field error")
	}
	if validationErr.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}
