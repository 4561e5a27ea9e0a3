package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/mock-interview/internal/interview"
	"github.com/jonathan/mock-interview/internal/types"
)

type connectionDetailsRequest struct {
	Company  string `json:"company"`
	Language string `json:"language"`
	// AgentName requests dispatch of a named room agent alongside the
	// participant.
	AgentName string `json:"agent_name"`
}

type connectionDetailsResponse struct {
	ServerURL        string `json:"server_url"`
	RoomName         string `json:"room_name"`
	ParticipantName  string `json:"participant_name"`
	ParticipantToken string `json:"participant_token"`
	// InitialCode is the editor prefill: problem description comments plus
	// starter code.
	InitialCode string `json:"initial_code"`
	SessionID   string `json:"session_id,omitempty"`
}

// handleConnectionDetails runs the content-generation pipeline and mints a
// room token whose metadata carries the session artifacts.
func (s *Server) handleConnectionDetails(w http.ResponseWriter, r *http.Request) {
	if s.livekit == nil {
		msg := "media server is not configured"
		if s.livekitErr != nil {
			msg = s.livekitErr.Error()
		}
		s.errorResponse(w, http.StatusInternalServerError, msg)
		return
	}

	var req connectionDetailsRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	ivReq := types.InterviewRequest{Company: req.Company, Language: req.Language}
	if err := ivReq.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	language := req.Language
	if language == "" {
		language = types.DefaultLanguage
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	bundle, err := s.interviews.GenerateInterview(ctx, interview.GenerateOptions{
		Company:  req.Company,
		Language: language,
	})
	if err != nil {
		log.Printf("interview generation failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "failed to generate interview content")
		return
	}

	metadata, err := json.Marshal(types.SessionMetadata{
		ProgrammingLanguage: language,
		ProblemDescription:  bundle.ProblemDescription,
		InterviewerGuide:    bundle.InterviewerGuide,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode session metadata")
		return
	}

	suffix := uuid.NewString()[:8]
	identity := "voice_assistant_user_" + suffix
	roomName := "voice_assistant_room_" + suffix

	token, err := s.tokens.CreateParticipantToken(ParticipantTokenOptions{
		Identity:  identity,
		Name:      "user",
		RoomName:  roomName,
		Metadata:  string(metadata),
		AgentName: req.AgentName,
	})
	if err != nil {
		log.Printf("token creation failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create room token")
		return
	}

	resp := connectionDetailsResponse{
		ServerURL:        s.livekit.URL,
		RoomName:         roomName,
		ParticipantName:  "user",
		ParticipantToken: token,
		// ProblemDescription already carries the composed editor prefill.
		InitialCode: bundle.ProblemDescription,
	}

	// Session persistence is best effort; the interview proceeds either way.
	if s.sessions != nil {
		id, err := s.sessions.SaveSession(ctx, roomName, req.Company, language, bundle)
		if err != nil {
			log.Printf("session save failed: %v", err)
		} else {
			resp.SessionID = id.String()
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	s.jsonResponse(w, http.StatusOK, resp)
}

type feedbackRequest struct {
	Transcript *[]types.TranscriptEntry `json:"transcript"`
	Code       *string                  `json:"code"`
	Language   *string                  `json:"programming_language"`
	SessionID  string                   `json:"session_id"`
}

// handleGenerateFeedback evaluates a finished session. An empty transcript
// array is a valid session; only an absent field is rejected here.
func (s *Server) handleGenerateFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Transcript == nil || req.Code == nil || req.Language == nil {
		s.errorResponse(w, http.StatusBadRequest,
			"missing required fields: transcript, code, and programming_language")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := s.feedback.GenerateFeedback(ctx, *req.Transcript, *req.Code, *req.Language)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("feedback generation failed: %v", err)
			s.errorResponse(w, status, "failed to generate feedback")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	if s.sessions != nil && req.SessionID != "" {
		if id, parseErr := uuid.Parse(req.SessionID); parseErr == nil {
			if err := s.sessions.SaveFeedback(ctx, id, result); err != nil {
				log.Printf("feedback save failed: %v", err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "session store is not configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := s.sessions.ListSessions(r.Context(), limit)
	if err != nil {
		log.Printf("session list failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	s.jsonResponse(w, http.StatusOK, records)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "session store is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid session id: %v", err))
		return
	}

	record, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("session fetch failed: %v", err)
			s.errorResponse(w, status, "failed to fetch session")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}
