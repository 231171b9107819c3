package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifefork/lifefork-server/internal/config"
	"github.com/lifefork/lifefork-server/internal/narrative"
)

// NewGenerators returns the live and demo generators for the configured mode.
// The demo generator is always the offline synthesizer; in gemini mode the
// live generator is the Gemini client, optionally wrapped with offline
// fallback per cfg.OfflineFallback.
func NewGenerators(ctx context.Context, cfg *config.Config, log zerolog.Logger) (live, demo narrative.Generator, err error) {
	offline := narrative.NewOfflineGenerator(time.Now().UnixNano())

	switch cfg.Generator {
	case "offline":
		return offline, offline, nil

	case "gemini":
		gemini, err := narrative.NewGeminiGenerator(ctx, narrative.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			Timeout:    time.Duration(cfg.GenerateTimeoutSeconds) * time.Second,
			MaxRetries: cfg.GenerateMaxRetries,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.OfflineFallback {
			return narrative.NewFallbackGenerator(gemini, offline, log), offline, nil
		}
		return gemini, offline, nil

	default:
		return nil, nil, fmt.Errorf("unknown GENERATOR: %s", cfg.Generator)
	}
}
