package interview

import "strings"

// maxFenceTagLen bounds what we accept as a language tag on an opening
// fence line (e.g. "python", "typescript").
const maxFenceTagLen = 20

// StripCodeFence removes enclosing markdown code fences from generated
// text. A fence is a line opening with ``` plus an optional language tag,
// closed by ``` on its own line. The starter-code role is instructed not to
// emit fences, but model output is sanitized defensively anyway.
//
// The function is pure and idempotent: stripping twice yields the same
// result as stripping once.
func StripCodeFence(s string) string {
	out := strings.TrimSpace(s)
	for {
		stripped, changed := stripOnce(out)
		if !changed {
			return stripped
		}
		out = stripped
	}
}

func stripOnce(s string) (string, bool) {
	if !strings.HasPrefix(s, "```") {
		return s, false
	}

	firstNL := strings.Index(s, "\n")
	if firstNL < 0 {
		// A lone fence marker line with no body
		if isFenceLine(s) {
			return "", true
		}
		return s, false
	}

	if !isFenceLine(s[:firstNL]) {
		// Text that merely starts with backticks, not a fence opener
		return s, false
	}

	body := strings.TrimRight(s[firstNL+1:], " \t\n")
	if body == "```" {
		return "", true
	}
	if strings.HasSuffix(body, "\n```") {
		body = strings.TrimSuffix(body, "\n```")
	}
	return strings.Trim(body, "\n"), true
}

// isFenceLine reports whether line is ``` followed by at most a short
// language tag with no spaces.
func isFenceLine(line string) bool {
	tag := strings.TrimSpace(strings.TrimPrefix(line, "```"))
	if tag == "" {
		return true
	}
	return len(tag) < maxFenceTagLen && !strings.Contains(tag, " ") && !strings.Contains(tag, "`")
}

// ComposePrefill builds the single editor-prefill string handed to the
// session UI: candidate-facing description first, starter code second,
// separated by a blank line.
func ComposePrefill(description, starterCode string) string {
	if starterCode == "" {
		return description
	}
	return description + "\n\n" + starterCode
}
