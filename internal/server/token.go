package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/mock-interview/internal/config"
)

// VideoGrant describes the room permissions embedded in a participant token.
type VideoGrant struct {
	Room           string `json:"room,omitempty"`
	RoomJoin       bool   `json:"roomJoin,omitempty"`
	CanPublish     *bool  `json:"canPublish,omitempty"`
	CanPublishData *bool  `json:"canPublishData,omitempty"`
	CanSubscribe   *bool  `json:"canSubscribe,omitempty"`
}

// RoomAgent names an agent to dispatch into the room on join.
type RoomAgent struct {
	AgentName string `json:"agent_name"`
}

// RoomConfig carries the room-level configuration claim.
type RoomConfig struct {
	Agents []RoomAgent `json:"agents,omitempty"`
}

// roomClaims is the media-server access token payload.
type roomClaims struct {
	Name       string      `json:"name,omitempty"`
	Metadata   string      `json:"metadata,omitempty"`
	Video      *VideoGrant `json:"video,omitempty"`
	RoomConfig *RoomConfig `json:"roomConfig,omitempty"`
	jwt.RegisteredClaims
}

// RoomTokenService mints signed room access tokens.
type RoomTokenService struct {
	cfg *config.LiveKitConfig
}

// NewRoomTokenService creates a token service backed by the given credentials.
func NewRoomTokenService(cfg *config.LiveKitConfig) *RoomTokenService {
	return &RoomTokenService{cfg: cfg}
}

// ParticipantTokenOptions describes one participant grant.
type ParticipantTokenOptions struct {
	Identity string
	Name     string
	RoomName string
	// Metadata is an opaque string delivered to the room agent, here the
	// serialized session metadata.
	Metadata string
	// AgentName, when set, requests dispatch of the named agent.
	AgentName string
}

// CreateParticipantToken returns a signed JWT granting the participant full
// publish and subscribe access to the named room.
func (ts *RoomTokenService) CreateParticipantToken(opts ParticipantTokenOptions) (string, error) {
	if opts.Identity == "" {
		return "", fmt.Errorf("participant identity is required")
	}
	if opts.RoomName == "" {
		return "", fmt.Errorf("room name is required")
	}

	yes := true
	now := time.Now()
	claims := roomClaims{
		Name:     opts.Name,
		Metadata: opts.Metadata,
		Video: &VideoGrant{
			Room:           opts.RoomName,
			RoomJoin:       true,
			CanPublish:     &yes,
			CanPublishData: &yes,
			CanSubscribe:   &yes,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.cfg.APIKey,
			Subject:   opts.Identity,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.cfg.TokenTTL)),
		},
	}
	if opts.AgentName != "" {
		claims.RoomConfig = &RoomConfig{
			Agents: []RoomAgent{{AgentName: opts.AgentName}},
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ts.cfg.APISecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign room token: %w", err)
	}
	return signed, nil
}
