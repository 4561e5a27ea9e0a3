// Package config - livekit.go provides realtime-session credential configuration.
package config

import (
	"fmt"
	"os"
	"time"
)

// DefaultTokenTTL is how long an issued room access token stays valid.
const DefaultTokenTTL = 15 * time.Minute

// LiveKitConfig holds the credentials for minting room access tokens and
// the server URL handed back to clients.
type LiveKitConfig struct {
	URL       string
	APIKey    string
	APISecret string
	TokenTTL  time.Duration
}

// NewLiveKitConfig creates the realtime credential configuration from
// environment variables. Each missing variable is reported by name so the
// operator knows exactly what to set.
func NewLiveKitConfig() (*LiveKitConfig, error) {
	url := os.Getenv("LIVEKIT_URL")
	if url == "" {
		return nil, fmt.Errorf("LIVEKIT_URL is not defined")
	}

	apiKey := os.Getenv("LIVEKIT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("LIVEKIT_API_KEY is not defined")
	}

	apiSecret := os.Getenv("LIVEKIT_API_SECRET")
	if apiSecret == "" {
		return nil, fmt.Errorf("LIVEKIT_API_SECRET is not defined")
	}

	return &LiveKitConfig{
		URL:       url,
		APIKey:    apiKey,
		APISecret: apiSecret,
		TokenTTL:  DefaultTokenTTL,
	}, nil
}
