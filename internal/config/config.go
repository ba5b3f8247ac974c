// Package config resolves Iris client settings from flags and environment.
//
// Nothing is persisted: credentials live in the environment (or a local .env
// loaded by the root command) and die with the process.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read during resolution.
const (
	EnvBotID   = "IRIS_BOT_ID"
	EnvToken   = "IRIS_TOKEN"
	EnvBaseURL = "IRIS_BASE_URL"
)

// ClientConfig contains resolved API client settings.
type ClientConfig struct {
	BotID   int64
	Token   string
	BaseURL string
}

// Resolve builds the client settings, with explicit overrides taking
// precedence over environment variables. BaseURL may stay empty, in which
// case the client computes its default.
func Resolve(botIDOverride int64, tokenOverride, baseURLOverride string) (ClientConfig, error) {
	cfg := ClientConfig{
		BotID:   botIDOverride,
		Token:   strings.TrimSpace(tokenOverride),
		BaseURL: strings.TrimSpace(baseURLOverride),
	}

	if cfg.BotID == 0 {
		raw := strings.TrimSpace(os.Getenv(EnvBotID))
		if raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return ClientConfig{}, fmt.Errorf("invalid %s: %w", EnvBotID, err)
			}
			cfg.BotID = id
		}
	}
	if cfg.Token == "" {
		cfg.Token = strings.TrimSpace(os.Getenv(EnvToken))
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = strings.TrimSpace(os.Getenv(EnvBaseURL))
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	if cfg.BotID <= 0 {
		return ClientConfig{}, fmt.Errorf("bot id not configured (set %s or pass --bot-id)", EnvBotID)
	}
	if cfg.Token == "" {
		return ClientConfig{}, fmt.Errorf("token not configured (set %s or pass --token)", EnvToken)
	}

	return cfg, nil
}
