// Package chat proxies user prompts to the Gemini generateContent API,
// pinned to health topics by a fixed system instruction.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"healieve/health-app/internal/config"
)

const systemInstruction = `
You are a helpful, friendly AI assistant focused only on health-related topics.
If someone asks anything unrelated to health (like coding, movies, or general queries), respond with:
"❗ Please ask a health-related question."
`

// FallbackText is returned when the provider response carries no extractable
// text.
const FallbackText = "No response."

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse mirrors the provider shape we extract from:
// candidates[0].content.parts[0].text. Every level may be absent.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client calls the Gemini REST API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a chat client from configuration.
func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate sends a prompt (prefixed with the system instruction) and returns
// the model's text. A response missing any level of the expected shape yields
// FallbackText rather than an error; transport and non-OK failures error out.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	full := fmt.Sprintf("%s\nUser: %s", systemInstruction, prompt)
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: full}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return extractText(out), nil
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return FallbackText
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return FallbackText
	}
	return parts[0].Text
}
