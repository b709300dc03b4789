package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/eduboost/eduboost-back/internal/dates"
	"github.com/eduboost/eduboost-back/internal/models"
)

// eventSchema constrains extraction responses to a JSON array of
// {date, title} objects.
var eventSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date":  {Type: genai.TypeString},
			"title": {Type: genai.TypeString},
		},
		Required: []string{"date", "title"},
	},
}

// ExtractEventsFromText pulls school calendar events out of free text.
// An unparseable response yields an empty list, treated as "nothing found".
func (g *Gateway) ExtractEventsFromText(ctx context.Context, text string) ([]models.SchoolEvent, error) {
	prompt := fmt.Sprintf(`다음 텍스트에서 학교 학사 일정(날짜와 행사명)을 추출해서 JSON 배열 형식으로 응답해줘.
텍스트: %s

응답 형식: [{"date": "YYYY-MM-DD", "title": "행사명"}, ...]
주의: 날짜 형식을 반드시 YYYY-MM-DD로 맞춰줘. 연도가 없으면 %d년으로 가정해.`, text, g.defaultYear)

	return g.extractEvents(ctx, genai.Text(prompt))
}

// ExtractEventsFromImage pulls school calendar events out of an image, e.g. a
// photographed schedule sheet.
func (g *Gateway) ExtractEventsFromImage(ctx context.Context, data []byte, mimeType string) ([]models.SchoolEvent, error) {
	prompt := fmt.Sprintf(`이 이미지에 포함된 학교 학사 일정(날짜와 행사명)을 추출해서 JSON 배열 형식으로 응답해줘. 응답 형식: [{"date": "YYYY-MM-DD", "title": "행사명"}, ...]. 날짜 형식을 반드시 YYYY-MM-DD로 맞춰줘. 연도가 없으면 %d년으로 가정해.`, g.defaultYear)

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return g.extractEvents(ctx, contents)
}

func (g *Gateway) extractEvents(ctx context.Context, contents []*genai.Content) ([]models.SchoolEvent, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   eventSchema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, flashModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("calendar extraction: %w", err)
	}
	raw, err := firstText(resp)
	if err != nil {
		return nil, err
	}
	return DecodeEvents(raw, g.defaultYear), nil
}

// DecodeEvents parses an extraction response into normalized events. Invalid
// JSON yields an empty list; entries whose date cannot be normalized to
// YYYY-MM-DD are skipped.
func DecodeEvents(raw string, defaultYear int) []models.SchoolEvent {
	// Strip markdown fences the model sometimes wraps JSON in.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var extracted []models.SchoolEvent
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &extracted); err != nil {
		return []models.SchoolEvent{}
	}

	events := []models.SchoolEvent{}
	for _, e := range extracted {
		normalized, ok := dates.Normalize(e.Date, defaultYear)
		if !ok || strings.TrimSpace(e.Title) == "" {
			continue
		}
		events = append(events, models.SchoolEvent{Date: normalized, Title: strings.TrimSpace(e.Title)})
	}
	return events
}
