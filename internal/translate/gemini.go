package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider translates product content using the Gemini API.
type GeminiProvider struct {
	apiKey string
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini-backed translation provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		apiKey: apiKey,
		client: client,
	}, nil
}

// Translate translates one text between the given language codes, keeping
// HTML tags intact.
func (p *GeminiProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following e-commerce product text from %s to %s. "+
			"Preserve all HTML tags exactly as they appear. "+
			"Respond with only the translated text, nothing else.\n\n%s",
		strings.ToUpper(sourceLang), strings.ToUpper(targetLang), text)

	resp, err := p.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("no translation returned")
	}

	return translation, nil
}

// Name returns the name of the translation provider
func (p *GeminiProvider) Name() string {
	return "gemini"
}
