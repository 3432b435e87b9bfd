package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"shaimind/src/config"
	serrors "shaimind/src/errors"
)

// Client is a minimal OpenAI-compatible chat-completions client.
// Sampling parameters are fixed at construction; every request uses
// the same model and settings.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	sampling   Sampling
	httpClient *http.Client
}

// Sampling holds the fixed generation parameters sent with every request
type Sampling struct {
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

type chatRequest struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewClient builds a client from the OpenAI section of the settings
func NewClient(cfg config.OpenAIConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   cfg.Model,
		sampling: Sampling{
			Temperature:      cfg.Temperature,
			MaxTokens:        cfg.MaxTokens,
			TopP:             cfg.TopP,
			FrequencyPenalty: cfg.FrequencyPenalty,
			PresencePenalty:  cfg.PresencePenalty,
		},
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// Model returns the configured model identifier
func (c *Client) Model() string {
	return c.model
}

// ChatCompletion sends the message list and returns the trimmed text of
// the first choice. Failures classified by HTTP status come back as
// *errors.APIError.
func (c *Client) ChatCompletion(ctx context.Context, messages []Message) (string, error) {
	reqBody := chatRequest{
		Model:            c.model,
		Messages:         messages,
		Temperature:      c.sampling.Temperature,
		MaxTokens:        c.sampling.MaxTokens,
		TopP:             c.sampling.TopP,
		FrequencyPenalty: c.sampling.FrequencyPenalty,
		PresencePenalty:  c.sampling.PresencePenalty,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", parseAPIError(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != nil {
		return "", &serrors.APIError{StatusCode: resp.StatusCode, Message: chatResp.Error.Message}
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

func parseAPIError(statusCode int, body []byte) error {
	var errResp chatResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		return &serrors.APIError{StatusCode: statusCode, Message: errResp.Error.Message}
	}

	message := strings.TrimSpace(string(body))
	if len(message) > 200 {
		message = message[:200]
	}
	return &serrors.APIError{StatusCode: statusCode, Message: message}
}
