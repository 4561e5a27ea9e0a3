package research

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// maxSeedsPerQuery bounds how many results each search query contributes.
const maxSeedsPerQuery = 3

// Searcher discovers candidate research pages for a company via
// programmable web search.
type Searcher struct {
	svc *customsearch.Service
	cx  string
}

// NewSearcher creates a Searcher backed by the custom search API.
func NewSearcher(ctx context.Context, apiKey string, cx string) (*Searcher, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Searcher{svc: svc, cx: cx}, nil
}

// FindSeeds returns deduplicated page URLs likely to describe the company's
// engineering practice and interview style. Individual query failures are
// skipped; an empty result is not an error.
func (s *Searcher) FindSeeds(ctx context.Context, company string) ([]string, error) {
	if company == "" {
		return nil, fmt.Errorf("company name is required")
	}

	queries := []string{
		fmt.Sprintf("%s engineering blog", company),
		fmt.Sprintf("%s software engineer interview process", company),
		fmt.Sprintf("%s engineering culture principles", company),
	}

	var seeds []string
	seen := make(map[string]bool)
	for _, q := range queries {
		resp, err := s.svc.Cse.List().Context(ctx).Cx(s.cx).Q(q).Num(maxSeedsPerQuery).Do()
		if err != nil {
			continue
		}
		for _, item := range resp.Items {
			if item.Link == "" || seen[item.Link] {
				continue
			}
			seen[item.Link] = true
			seeds = append(seeds, item.Link)
		}
	}

	return seeds, nil
}
