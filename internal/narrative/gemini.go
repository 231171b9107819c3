package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/lifefork/lifefork-server/internal/model"
)

// GeminiGenerator calls the Gemini API with a structured-output schema and
// parses the reply into SimulationResults. Transport failures are retried
// with bounded exponential backoff; non-conforming output is not, because
// re-prompting a non-deterministic generator does not guarantee conformance.
type GeminiGenerator struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries uint64
	log        zerolog.Logger
}

// GeminiConfig holds construction parameters for the live generator.
type GeminiConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// NewGeminiGenerator creates a live generator against the Gemini API.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig, log zerolog.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	mdl := cfg.Model
	if mdl == "" {
		mdl = "gemini-2.5-flash"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{
		client:     client,
		model:      mdl,
		timeout:    timeout,
		maxRetries: uint64(retries),
		log:        log,
	}, nil
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, form model.SimulationForm) (*model.SimulationResults, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildPrompt(form)

	var results *model.SimulationResults
	attempt := func() error {
		r, err := g.generateOnce(ctx, prompt)
		if err != nil {
			var ge model.GenerationError
			if errors.As(err, &ge) && !ge.Retryable {
				return backoff.Permanent(err)
			}
			return err
		}
		results = r
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), g.maxRetries), ctx)
	if err := backoff.RetryNotify(attempt, bo, func(err error, next time.Duration) {
		g.log.Warn().Err(err).Dur("retry_in", next).Msg("gemini call failed, retrying")
	}); err != nil {
		if model.IsGenerationError(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, model.NewGenerationError("generation timed out", true, ctx.Err())
		}
		return nil, model.NewGenerationError("generation service unavailable", true, err)
	}
	return results, nil
}

func (g *GeminiGenerator) generateOnce(ctx context.Context, prompt string) (*model.SimulationResults, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    resultsSchema(),
	})
	if err != nil {
		// Transport or service error; candidate for retry.
		return nil, err
	}

	text := resp.Text()
	if text == "" {
		return nil, model.NewGenerationError("generation service returned no text", false, nil)
	}
	return parseResults([]byte(text))
}

// parseResults decodes the model's JSON reply and re-validates it against the
// result contract. Any deviation is a permanent generation failure.
func parseResults(data []byte) (*model.SimulationResults, error) {
	// Score arrives as a JSON number; tolerate fractional values by rounding.
	var raw struct {
		FutureLetterAlternative model.FutureLetter `json:"futureLetterAlternative"`
		FutureLetterCurrent     model.FutureLetter `json:"futureLetterCurrent"`
		Comparison              model.Comparison   `json:"comparison"`
		OverallScore            float64            `json:"overallScore"`
		Category                string             `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, model.NewGenerationError("generation service returned malformed JSON", false, err)
	}

	results := &model.SimulationResults{
		FutureLetterAlternative: raw.FutureLetterAlternative,
		FutureLetterCurrent:     raw.FutureLetterCurrent,
		Comparison:              raw.Comparison,
		OverallScore:            int(math.Round(raw.OverallScore)),
		Category:                raw.Category,
	}
	if err := ValidateResults(results); err != nil {
		return nil, model.NewGenerationError("generation output violates result contract", false, err)
	}
	return results, nil
}

// resultsSchema declares the fixed output shape; all seven result fields are
// required so the model cannot omit any of them.
func resultsSchema() *genai.Schema {
	letter := func() *genai.Schema {
		return &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"letter":   {Type: genai.TypeString},
				"timeline": {Type: genai.TypeString},
				"location": {Type: genai.TypeString},
				"mood":     {Type: genai.TypeString},
			},
			Required: []string{"letter", "timeline", "location", "mood"},
		}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"futureLetterAlternative": letter(),
			"futureLetterCurrent":     letter(),
			"comparison": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"majorDifferences": {Type: genai.TypeString},
					"emotionalTone":    {Type: genai.TypeString},
					"lifeEvents":       {Type: genai.TypeString},
				},
				Required: []string{"majorDifferences", "emotionalTone", "lifeEvents"},
			},
			"overallScore": {Type: genai.TypeNumber},
			"category":     {Type: genai.TypeString},
		},
		Required: []string{"futureLetterAlternative", "futureLetterCurrent", "comparison", "overallScore", "category"},
	}
}
