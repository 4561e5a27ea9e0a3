package interview

import "fmt"

// EmptyArtifactError indicates generated content violated its contract
// after post-processing (e.g. a description that stripped down to nothing).
// Treated identically to an upstream generation failure: the pipeline does
// not substitute default content.
type EmptyArtifactError struct {
	Field string
}

func (e *EmptyArtifactError) Error() string {
	return fmt.Sprintf("generated content is empty after post-processing: %s", e.Field)
}
