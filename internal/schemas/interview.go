package schemas

// InterviewerGuide constrains the question-designer output: a single
// non-empty guide string covering context, walkthrough, pitfalls, rubric,
// and hints.
const InterviewerGuide = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "interviewer_problem_reference_guide": {
      "type": "string",
      "minLength": 1,
      "description": "A comprehensive guide for the interviewer including context, solution walkthrough, pitfalls, and evaluation criteria."
    }
  },
  "required": ["interviewer_problem_reference_guide"],
  "additionalProperties": false
}`

// CandidateArtifact constrains the starter-code output: the candidate-facing
// problem description (formatted as comments in the target language) plus
// the raw starter code.
const CandidateArtifact = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "text_based_problem_description_given_to_user": {
      "type": "string",
      "minLength": 1,
      "description": "The problem description formatted as COMMENTS in the target language."
    },
    "starter_code": {
      "type": "string",
      "description": "The raw starter code string, including imports and comments."
    }
  },
  "required": ["text_based_problem_description_given_to_user", "starter_code"],
  "additionalProperties": false
}`

// FeedbackResult constrains the evaluator output. Each score is an integer
// in [1,10]; an out-of-range score fails validation rather than being
// clamped.
const FeedbackResult = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "technical_score": {"type": "integer", "minimum": 1, "maximum": 10},
    "technical_feedback": {"type": "string", "minLength": 1},
    "communication_score": {"type": "integer", "minimum": 1, "maximum": 10},
    "communication_feedback": {"type": "string", "minLength": 1},
    "problem_solving_score": {"type": "integer", "minimum": 1, "maximum": 10},
    "problem_solving_feedback": {"type": "string", "minLength": 1},
    "overall_summary": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "improvements": {"type": "array", "items": {"type": "string"}}
  },
  "required": [
    "technical_score",
    "technical_feedback",
    "communication_score",
    "communication_feedback",
    "problem_solving_score",
    "problem_solving_feedback",
    "overall_summary",
    "strengths",
    "improvements"
  ],
  "additionalProperties": false
}`
