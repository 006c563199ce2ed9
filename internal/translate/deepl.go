package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	deeplAPIURL  = "https://api-free.deepl.com/v2/translate"
	deeplTimeout = 60 * time.Second

	// maxAttempts bounds how often a single translation request is sent
	// before a transient failure becomes fatal.
	maxAttempts = 5
)

// DeepLClient implements Provider for the DeepL HTTP API.
type DeepLClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
	backoff    time.Duration
}

// deeplResponse represents the API response structure
type deeplResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// StatusError represents a non-success HTTP response from a translation
// endpoint.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.Code, e.Body)
}

// retryable reports whether the status is a transient gateway failure.
func (e *StatusError) retryable() bool {
	switch e.Code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// DeepLOption configures a DeepLClient.
type DeepLOption func(*DeepLClient)

// WithAPIURL overrides the DeepL endpoint URL.
func WithAPIURL(apiURL string) DeepLOption {
	return func(c *DeepLClient) {
		if apiURL != "" {
			c.apiURL = apiURL
		}
	}
}

// WithBackoff overrides the base backoff delay between retry attempts.
func WithBackoff(d time.Duration) DeepLOption {
	return func(c *DeepLClient) { c.backoff = d }
}

// NewDeepLClient creates a new DeepL API client
func NewDeepLClient(apiKey string, opts ...DeepLOption) *DeepLClient {
	c := &DeepLClient{
		apiKey: apiKey,
		apiURL: deeplAPIURL,
		httpClient: &http.Client{
			Timeout: deeplTimeout,
		},
		backoff: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Translate sends one text to DeepL in HTML-tag-aware mode and returns the
// translated text. Gateway errors (502/503/504) are retried with exponential
// backoff up to maxAttempts; any other failure is returned immediately.
func (c *DeepLClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("DeepL API key not found")
	}

	params := url.Values{}
	params.Set("auth_key", c.apiKey)
	params.Set("source_lang", strings.ToUpper(sourceLang))
	params.Set("text", text)
	params.Set("target_lang", strings.ToUpper(targetLang))
	params.Set("tag_handling", "html")

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			// 1s, 2s, 4s, 8s with the default base delay
			delay := c.backoff << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		translation, err := c.post(ctx, params)
		if err == nil {
			return translation, nil
		}
		if statusErr, ok := err.(*StatusError); ok && statusErr.retryable() {
			lastErr = err
			continue
		}
		return "", err
	}

	return "", fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

func (c *DeepLClient) post(ctx context.Context, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, strings.NewReader(params.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{
			Provider: "deepl",
			Code:     resp.StatusCode,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	var deeplResp deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&deeplResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(deeplResp.Translations) == 0 {
		return "", fmt.Errorf("no translations in response")
	}

	return deeplResp.Translations[0].Text, nil
}

// Name returns the name of the translation provider
func (c *DeepLClient) Name() string {
	return "deepl"
}
