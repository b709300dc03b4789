// Package ai is the drafting gateway in front of the Gemini API. Callers get
// either free text, text plus grounding links, or extracted calendar events;
// any call may fail and the caller surfaces one generic error with no retry.
package ai

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

const (
	// flashModel handles quick drafting calls, proModel the search-grounded ones.
	flashModel = "gemini-1.5-flash"
	proModel   = "gemini-1.5-pro"
)

type Gateway struct {
	client      *genai.Client
	defaultYear int
}

func New(ctx context.Context, apiKey string, defaultYear int) (*Gateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create Gemini client: %w", err)
	}
	log.Println("✅ Gemini client initialized")
	return &Gateway{client: client, defaultYear: defaultYear}, nil
}

// searchConfig returns a per-call config with Google Search grounding enabled.
func searchConfig(system *genai.Content) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: system,
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
}

// firstText pulls the text out of a response, or fails when the model
// returned nothing usable.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("empty model response")
	}
	txt := resp.Text()
	if txt == "" {
		return "", fmt.Errorf("empty model response")
	}
	return txt, nil
}
