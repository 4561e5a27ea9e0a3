package agents

import (
	"context"
	"encoding/json"

	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/schemas"
)

// Generator is the generation capability: it issues one JSON-mode model call
// for a role and guarantees that only schema-valid output reaches the
// caller. Orchestrators never see raw model text.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator over an LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate invokes a role with a prompt, validates the raw response against
// the given JSON schema, and decodes it into out. The role's instructions
// are prepended to the prompt as the system preamble.
//
// Failure modes: *GenerationError when the provider call fails,
// *ContractError when the response violates the schema or cannot be decoded.
func (g *Generator) Generate(ctx context.Context, role Role, prompt, schema string, out any) error {
	full := role.Instructions + "\n\n" + prompt

	raw, err := g.client.GenerateJSON(ctx, full, role.Tier, role.Effort)
	if err != nil {
		return &GenerationError{
			Role:    role.ID,
			Message: "provider call failed",
			Cause:   err,
		}
	}

	// The client already strips markdown wrappers; clean again in case the
	// model nested fences.
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.ValidateOutput(schema, raw); err != nil {
		return &ContractError{
			Role:    role.ID,
			Message: "response failed schema validation",
			Cause:   err,
		}
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return &ContractError{
			Role:    role.ID,
			Message: "failed to decode response",
			Cause:   err,
		}
	}

	return nil
}
