package llm

import "testing"

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig()

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderGemini)
	}

	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		if cfg.GetModel(tier) == "" {
			t.Errorf("no default model for tier %s", tier)
		}
	}
}

func TestGetModel_FallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		models map[ModelTier]string
		tier   ModelTier
		want   string
	}{
		{
			name:   "exact tier match",
			models: map[ModelTier]string{TierAdvanced: "gemini-2.5-pro"},
			tier:   TierAdvanced,
			want:   "gemini-2.5-pro",
		},
		{
			name:   "falls back to standard",
			models: map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
			tier:   TierAdvanced,
			want:   "gemini-2.5-flash",
		},
		{
			name:   "falls back to lite",
			models: map[ModelTier]string{TierLite: "gemini-2.5-flash-lite"},
			tier:   TierAdvanced,
			want:   "gemini-2.5-flash-lite",
		},
		{
			name:   "no model configured",
			models: map[ModelTier]string{},
			tier:   TierStandard,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Provider: ProviderGemini, Models: tt.models}
			if got := cfg.GetModel(tt.tier); got != tt.want {
				t.Errorf("GetModel(%s) = %q, want %q", tt.tier, got, tt.want)
			}
		})
	}
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	original := DefaultGeminiConfig()
	originalAdvanced := original.GetModel(TierAdvanced)

	modified := original.WithModel(TierAdvanced, "custom-model")

	if modified.GetModel(TierAdvanced) != "custom-model" {
		t.Errorf("modified config not updated")
	}
	if original.GetModel(TierAdvanced) != originalAdvanced {
		t.Errorf("WithModel mutated the original config")
	}
}

func TestEffortOutputBudget(t *testing.T) {
	if EffortLow.OutputBudget() >= EffortMedium.OutputBudget() {
		t.Errorf("low effort budget should be below medium")
	}
	if EffortMedium.OutputBudget() >= EffortHigh.OutputBudget() {
		t.Errorf("medium effort budget should be below high")
	}
	if Effort("bogus").OutputBudget() != EffortMedium.OutputBudget() {
		t.Errorf("unknown effort should use the medium budget")
	}
}
