package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/mock-interview/internal/agents"
	"github.com/jonathan/mock-interview/internal/config"
	"github.com/jonathan/mock-interview/internal/feedback"
	"github.com/jonathan/mock-interview/internal/interview"
	"github.com/jonathan/mock-interview/internal/llm"
	"github.com/jonathan/mock-interview/internal/server"
	"github.com/jonathan/mock-interview/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the HTTP API server exposing connection-details, generate-feedback, and session history endpoints.",
	RunE:  runServe,
}

var (
	servePort        int
	serveAPIKey      string
	serveDatabaseURL string
	serveTimingPath  string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "Database URL for session history (overrides DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveTimingPath, "timing-config", "", "Path to the timing configuration JSON file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey := serveAPIKey
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

	timing, err := config.LoadTiming(serveTimingPath)
	if err != nil {
		return fmt.Errorf("failed to load timing configuration: %w", err)
	}

	gen := agents.NewGenerator(client)
	interviews := interview.NewService(gen, timing.HardCutoffMinutes())
	evaluations := feedback.NewService(gen)

	cfg := server.Config{Port: servePort}

	// Missing media-server credentials are surfaced per request, so the
	// feedback endpoints stay usable without them.
	livekit, lkErr := config.NewLiveKitConfig()
	if lkErr != nil {
		log.Printf("Warning: connection-details disabled: %v", lkErr)
		cfg.LiveKitErr = lkErr
	} else {
		cfg.LiveKit = livekit
	}

	databaseURL := serveDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		sessions, err := store.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer sessions.Close()
		if err := sessions.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}
		cfg.Sessions = sessions
	} else {
		log.Println("DATABASE_URL not set, session history disabled")
	}

	srv, err := server.New(cfg, interviews, evaluations)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
