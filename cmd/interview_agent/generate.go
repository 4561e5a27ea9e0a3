package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/config"
	"github.com/jonathan/mock-interview/internal/interview"
	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/observability"
	"github.com/jonathan/mock-interview/internal/research"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate interview content for a session",
	Long:  "Run the two-stage content pipeline: design a problem with a hidden interviewer guide, then produce the candidate-facing description and starter code.",
	RunE:  runGenerate,
}

var (
	generateCompany    string
	generateLanguage   string
	generateOutputFile string
	generateAPIKey     string
	generateTiming     string
	generateSeeds      []string
	generateSearchCx   string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&generateCompany, "company", "", "Company to flavor the problem after (empty for a generic problem)")
	generateCmd.Flags().StringVar(&generateLanguage, "language", "", "Programming language for the starter code (default python)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to write the artifact bundle JSON (default stdout)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateTiming, "timing-config", "", "Path to the timing configuration JSON file")
	generateCmd.Flags().StringArrayVar(&generateSeeds, "seed", nil, "Company research page URL (repeatable)")
	generateCmd.Flags().StringVar(&generateSearchCx, "search-cx", "", "Custom search engine ID for seed discovery (overrides SEARCH_ENGINE_CX env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print the generated artifacts to stderr")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	apiKey := generateAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	timing, err := config.LoadTiming(generateTiming)
	if err != nil {
		return fmt.Errorf("failed to load timing configuration: %w", err)
	}

	opts := interview.GenerateOptions{
		Company:  generateCompany,
		Language: generateLanguage,
	}

	// Research is optional; the pipeline works from the company name alone.
	seeds := generateSeeds
	if len(seeds) == 0 && generateCompany != "" {
		cx := generateSearchCx
		if cx == "" {
			cx = os.Getenv("SEARCH_ENGINE_CX")
		}
		if cx != "" {
			searcher, err := research.NewSearcher(ctx, apiKey, cx)
			if err != nil {
				return fmt.Errorf("failed to create searcher: %w", err)
			}
			found, err := searcher.FindSeeds(ctx, generateCompany)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: seed discovery failed: %v\n", err)
			}
			seeds = found
		}
	}
	if len(seeds) > 0 {
		digest, err := research.Digest(ctx, client, seeds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: company research failed, continuing without it: %v\n", err)
		} else {
			opts.ResearchDigest = digest
		}
	}

	gen := agents.NewGenerator(client)
	service := interview.NewService(gen, timing.HardCutoffMinutes())

	bundle, err := service.GenerateInterview(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to generate interview content: %w", err)
	}

	if generateVerbose {
		observability.NewPrinter(os.Stderr).PrintBundle(bundle)
	}

	jsonBytes, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if generateOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(generateOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", generateOutputFile)
	return nil
}
