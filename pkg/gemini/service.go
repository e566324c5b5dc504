package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrEmptyResponse is returned when the API answers 2xx but the first
// candidate carries no text. Callers must surface this separately from
// transport failures.
var ErrEmptyResponse = errors.New("gemini returned an empty response")

// StatusError carries a non-2xx answer from the Gemini API. Message is the
// upstream error.message when the payload had one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini API error (status %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gemini API error (status %d)", e.Code)
}

// GeminiService calls the generateContent REST endpoint directly.
type GeminiService struct {
	ApiKey  string
	Model   string
	BaseURL string // overridable for tests
	client  *http.Client
}

func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		ApiKey:  apiKey,
		Model:   model,
		BaseURL: defaultBaseURL,
		client:  &http.Client{},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends a single-turn prompt and returns the text of the
// first candidate. Non-2xx answers come back as *StatusError, a usable 2xx
// without text as ErrEmptyResponse.
func (g *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.ApiKey)

	payload := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result generateResponse
	if resp.StatusCode != http.StatusOK {
		// Best effort: pull error.message out of the payload if it parses
		message := ""
		if err := json.Unmarshal(respBody, &result); err == nil && result.Error != nil {
			message = result.Error.Message
		}
		return "", &StatusError{Code: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		if text := result.Candidates[0].Content.Parts[0].Text; text != "" {
			return text, nil
		}
	}
	return "", ErrEmptyResponse
}
