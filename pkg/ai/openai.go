package ai

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/pkg/config"
)

// MinutesPrompt fixes the output grammar the minutes parser understands
const MinutesPrompt = "Extract project action items in this format:\n" +
	"1. **Issue:** description\n   - **Assigned to:** name"

const serviceName = "OpenAI"

// OpenAIClient turns transcripts into minutes with a chat completion call
type OpenAIClient struct {
	apiKey      string
	model       string
	temperature float64
	client      openai.Client
	logger      *zap.Logger
}

// NewOpenAIClient creates a completion client from config.
// An empty API key is accepted here and reported on every Summarize call.
func NewOpenAIClient(cfg *config.OpenAIConfig, httpClient *http.Client, logger *zap.Logger) *OpenAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Exactly one outbound call per summary.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-3.5-turbo"
	}

	return &OpenAIClient{
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: cfg.Temperature,
		client:      openai.NewClient(opts...),
		logger:      logger,
	}
}

// Summarize sends the transcript with the minutes prompt and returns the first choice's content
func (c *OpenAIClient) Summarize(ctx context.Context, transcript string) (string, error) {
	if c.apiKey == "" {
		return "", errors.ErrConfiguration("OPENAI_API_KEY is not set")
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(MinutesPrompt),
			openai.UserMessage(transcript),
		},
		Temperature: openai.Float(c.temperature),
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if stdErrors.As(err, &apiErr) {
			c.logger.Error("openai chat completion rejected",
				zap.Int("status_code", apiErr.StatusCode),
				zap.String("error_type", apiErr.Type),
			)
			return "", errors.ErrService(serviceName, apiErr.StatusCode, responseBody(apiErr))
		}
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.ErrService(serviceName, http.StatusOK, resp.RawJSON())
	}

	c.logger.Debug("openai chat completion finished",
		zap.String("model", c.model),
		zap.Duration("duration", time.Since(start)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)

	return resp.Choices[0].Message.Content, nil
}

// responseBody returns the rejected call's HTTP body byte for byte. The SDK
// puts the body back after decoding it; RawJSON only holds the inner "error" member.
func responseBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		if b, err := io.ReadAll(apiErr.Response.Body); err == nil && len(b) > 0 {
			return string(b)
		}
	}
	return apiErr.RawJSON()
}
