package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"github.com/eduboost/eduboost-back/internal/models"
)

func TestGroundingLinks(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{URI: "https://example.com/a", Title: "교육부 공지"}},
					{Web: &genai.GroundingChunkWeb{URI: "https://example.com/b"}},
					{Web: &genai.GroundingChunkWeb{Title: "주소 없는 출처"}},
					{Web: nil},
					nil,
				},
			},
		}},
	}

	got := groundingLinks(resp, "관련 규정 확인")

	assert.Equal(t, []models.GroundingLink{
		{Title: "교육부 공지", URI: "https://example.com/a"},
		{Title: "관련 규정 확인", URI: "https://example.com/b"},
	}, got)
}

func TestGroundingLinksWithoutMetadata(t *testing.T) {
	cases := []*genai.GenerateContentResponse{
		nil,
		{},
		{Candidates: []*genai.Candidate{{}}},
	}
	for _, resp := range cases {
		got := groundingLinks(resp, "관련 자료")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}
