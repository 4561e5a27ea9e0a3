package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/feedback"
	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/observability"
	"github.com/jonathan/mock-interview/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Evaluate a finished session into structured feedback",
	Long:  "Evaluate a session transcript and final code into scored, structured interview feedback.",
	RunE:  runFeedback,
}

var (
	feedbackTranscriptFile string
	feedbackCodeFile       string
	feedbackLanguage       string
	feedbackOutputFile     string
	feedbackAPIKey         string
	feedbackVerbose        bool
)

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackTranscriptFile, "transcript", "t", "", "Path to the transcript JSON file (array of {role, content})")
	feedbackCmd.Flags().StringVarP(&feedbackCodeFile, "code", "c", "", "Path to the candidate's final code file")
	feedbackCmd.Flags().StringVar(&feedbackLanguage, "language", types.DefaultLanguage, "Programming language the session used")
	feedbackCmd.Flags().StringVarP(&feedbackOutputFile, "out", "o", "", "Path to write the feedback JSON (default stdout)")
	feedbackCmd.Flags().StringVar(&feedbackAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	feedbackCmd.Flags().BoolVarP(&feedbackVerbose, "verbose", "v", false, "Print the feedback report to stderr")
	_ = feedbackCmd.MarkFlagRequired("transcript")
	_ = feedbackCmd.MarkFlagRequired("code")

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(_ *cobra.Command, _ []string) error {
	apiKey := feedbackAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	transcriptBytes, err := os.ReadFile(feedbackTranscriptFile)
	if err != nil {
		return fmt.Errorf("failed to read transcript file: %w", err)
	}
	var transcript []types.TranscriptEntry
	if err := json.Unmarshal(transcriptBytes, &transcript); err != nil {
		return fmt.Errorf("failed to parse transcript JSON: %w", err)
	}

	codeBytes, err := os.ReadFile(feedbackCodeFile)
	if err != nil {
		return fmt.Errorf("failed to read code file: %w", err)
	}

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	service := feedback.NewService(agents.NewGenerator(client))

	result, err := service.GenerateFeedback(ctx, transcript, string(codeBytes), feedbackLanguage)
	if err != nil {
		return fmt.Errorf("failed to generate feedback: %w", err)
	}

	if feedbackVerbose {
		observability.NewPrinter(os.Stderr).PrintFeedback(result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if feedbackOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(feedbackOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Output: %s\n", feedbackOutputFile)
	return nil
}
