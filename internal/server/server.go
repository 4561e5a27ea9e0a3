// Package server provides the HTTP boundary for the mock-interview service:
// session setup (connection details with embedded interview content) and
// post-session feedback.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/mock-interview/internal/config"
	"github.com/jonathan/mock-interview/internal/interview"
	"github.com/jonathan/mock-interview/internal/store"
	"github.com/jonathan/mock-interview/internal/types"
)

// requestTimeout is the upper bound for one pipeline invocation, generation
// calls included. The pipelines carry no timeouts of their own.
const requestTimeout = 60 * time.Second

// InterviewGenerator produces the session artifact bundle.
type InterviewGenerator interface {
	GenerateInterview(ctx context.Context, opts interview.GenerateOptions) (*types.SessionArtifactBundle, error)
}

// FeedbackGenerator evaluates a finished session.
type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, transcript []types.TranscriptEntry, code, language string) (*types.FeedbackResult, error)
}

// SessionStore persists sessions for the history endpoints. Optional.
type SessionStore interface {
	SaveSession(ctx context.Context, roomName, company, language string, bundle *types.SessionArtifactBundle) (uuid.UUID, error)
	SaveFeedback(ctx context.Context, sessionID uuid.UUID, result *types.FeedbackResult) error
	GetSession(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)
	ListSessions(ctx context.Context, limit int) ([]store.SessionRecord, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	interviews InterviewGenerator
	feedback   FeedbackGenerator
	sessions   SessionStore

	livekit    *config.LiveKitConfig
	livekitErr error
	tokens     *RoomTokenService
}

// Config holds server configuration
type Config struct {
	Port int
	// LiveKit may be nil; connection-details requests then fail with the
	// configuration error kept in LiveKitErr.
	LiveKit    *config.LiveKitConfig
	LiveKitErr error
	// Sessions may be nil; history endpoints then report the store as
	// unconfigured.
	Sessions SessionStore
}

// New creates a new server instance
func New(cfg Config, interviews InterviewGenerator, feedback FeedbackGenerator) (*Server, error) {
	if interviews == nil {
		return nil, fmt.Errorf("interview generator is required")
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback generator is required")
	}

	s := &Server{
		interviews: interviews,
		feedback:   feedback,
		sessions:   cfg.Sessions,
		livekit:    cfg.LiveKit,
		livekitErr: cfg.LiveKitErr,
	}
	if cfg.LiveKit != nil {
		s.tokens = NewRoomTokenService(cfg.LiveKit)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /connection-details", s.handleConnectionDetails)
	mux.HandleFunc("POST /generate-feedback", s.handleGenerateFeedback)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session history (requires the session store)
	mux.HandleFunc("GET /sessions", s.handleListSessions)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: requestTimeout + 10*time.Second, // headroom over the pipeline deadline
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
