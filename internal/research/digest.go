package research

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/prompts"
)

// maxPageChars caps how much of each page feeds the summarizer.
const maxPageChars = 8000

// maxConcurrentFetches bounds parallel page fetches.
const maxConcurrentFetches = 4

// Digest fetches the seed URLs concurrently, extracts their main text, and
// summarizes them into a short company-agnostic engineering-domain digest
// using the lite model tier. All fetches must succeed; a partial picture of
// the domain is worse than none, and the caller treats research as optional
// anyway.
func Digest(ctx context.Context, client llm.Client, seedURLs []string) (string, error) {
	if len(seedURLs) == 0 {
		return "", fmt.Errorf("no seed URLs provided")
	}

	pages := make([]*Page, len(seedURLs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, seedURL := range seedURLs {
		g.Go(func() error {
			page, err := FetchPage(gctx, seedURL)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, page := range pages {
		text := page.Text
		if len(text) > maxPageChars {
			text = text[:maxPageChars]
		}
		sb.WriteString(fmt.Sprintf("--- %s ---\n%s\n\n", page.URL, text))
	}

	prompt := prompts.Format(
		prompts.MustGet("research.json", "digest-summary"),
		map[string]string{"Pages": sb.String()},
	)

	digest, err := client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to summarize research pages: %w", err)
	}

	digest = strings.TrimSpace(digest)
	if digest == "" {
		return "", fmt.Errorf("empty research digest")
	}
	return digest, nil
}
