package agents

import "fmt"

// GenerationError represents a provider failure while invoking a role
type GenerationError struct {
	Role    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed for role %s: %s: %v", e.Role, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed for role %s: %s", e.Role, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ContractError represents model output that failed the role's output schema
// or could not be decoded into its typed form
type ContractError struct {
	Role    string
	Message string
	Cause   error
}

func (e *ContractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output contract violation for role %s: %s: %v", e.Role, e.Message, e.Cause)
	}
	return fmt.Sprintf("output contract violation for role %s: %s", e.Role, e.Message)
}

func (e *ContractError) Unwrap() error {
	return e.Cause
}
