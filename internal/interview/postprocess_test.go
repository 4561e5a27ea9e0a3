package interview

import "testing"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no fence untouched",
			input:    "def two_sum(nums, target):\n    pass",
			expected: "def two_sum(nums, target):\n    pass",
		},
		{
			name:     "plain fence",
			input:    "```\ndef two_sum(nums, target):\n    pass\n```",
			expected: "def two_sum(nums, target):\n    pass",
		},
		{
			name:     "fence with language tag",
			input:    "```python\ndef two_sum(nums, target):\n    pass\n```",
			expected: "def two_sum(nums, target):\n    pass",
		},
		{
			name:     "opening fence without closing fence",
			input:    "```python\ndef two_sum(nums, target):\n    pass",
			expected: "def two_sum(nums, target):\n    pass",
		},
		{
			name:     "surrounding whitespace",
			input:    "\n  ```python\n# comment\n```  \n",
			expected: "# comment",
		},
		{
			name:     "inner backticks preserved",
			input:    "```python\ns = \"```\"\nprint(s)\n```",
			expected: "s = \"```\"\nprint(s)",
		},
		{
			name:     "lone fence marker",
			input:    "```",
			expected: "",
		},
		{
			name:     "empty fenced block",
			input:    "```python\n```",
			expected: "",
		},
		{
			name:     "triple backticks mid-text untouched",
			input:    "use ``` to fence code",
			expected: "use ``` to fence code",
		},
		{
			name:     "opening line with spaces is not a fence",
			input:    "``` not a fence tag\ncontent",
			expected: "``` not a fence tag\ncontent",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripCodeFence(tt.input)
			if result != tt.expected {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestStripCodeFence_Idempotent(t *testing.T) {
	inputs := []string{
		"```python\ndef f():\n    pass\n```",
		"```\n```python\nnested\n```\n```",
		"plain text",
		"```",
	}

	for _, input := range inputs {
		once := StripCodeFence(input)
		twice := StripCodeFence(once)
		if once != twice {
			t.Errorf("StripCodeFence not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestComposePrefill(t *testing.T) {
	tests := []struct {
		name        string
		description string
		starterCode string
		expected    string
	}{
		{
			name:        "description and code",
			description: "# Two Sum",
			starterCode: "def two_sum(nums, target):\n    pass",
			expected:    "# Two Sum\n\ndef two_sum(nums, target):\n    pass",
		},
		{
			name:        "empty code yields description only",
			description: "# Two Sum",
			starterCode: "",
			expected:    "# Two Sum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComposePrefill(tt.description, tt.starterCode)
			if result != tt.expected {
				t.Errorf("ComposePrefill() = %q, want %q", result, tt.expected)
			}
		})
	}
}
