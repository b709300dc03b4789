package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/eduboost/eduboost-back/internal/models"
)

// ReportComments drafts a report-card behavioral comment from observation
// notes and keywords.
func (g *Gateway) ReportComments(ctx context.Context, studentInfo, keywords string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopP:        genai.Ptr[float32](0.9),
	}

	prompt := fmt.Sprintf(`교사로서 다음 학생의 생활기록부 행동발달 및 종합의견을 작성해줘.
학생 정보: %s
핵심 키워드: %s
문체는 정중하고 전문적인 어조로, 구체적인 사례를 상상해서 자연스럽게 연결해줘. 한국어 표준 맞춤법을 엄수해. 약 300자 내외로 작성해줘.`, studentInfo, keywords)

	resp, err := g.client.Models.GenerateContent(ctx, flashModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("report comments: %w", err)
	}
	return firstText(resp)
}

// LessonPlan drafts a 40-minute lesson plan with search-grounded reference links.
func (g *Gateway) LessonPlan(ctx context.Context, topic, grade string) (string, []models.GroundingLink, error) {
	prompt := fmt.Sprintf(`다음 주제에 대한 40분 분량의 수업 지도안을 작성해줘.
학년: %s
주제: %s
구성: [학습목표], [준비물], [도입(동기유발, 5분)], [전개(활동 1, 2, 3, 30분)], [정리(마무리, 5분)].

특히 중요: 각 단계별로 활용할 수 있는 '유튜브 교육 영상'과 '참고할 만한 PPT 자료'를 구글에서 검색해서 추천해줘.
지도안 본문 중간에 관련 링크가 어디에 쓰이면 좋을지 명시하고, 검색된 구체적인 URL들도 포함해줘.`, grade, topic)

	return g.groundedDraft(ctx, prompt, nil, "관련 자료")
}

// ParentNotice drafts a notice to parents for the given situation and grade.
func (g *Gateway) ParentNotice(ctx context.Context, situation, grade string) (string, error) {
	prompt := fmt.Sprintf(`학부모님께 보낼 알림장 문구를 작성해줘.
대상 학년: 초등학교 %s
상황: %s.
문장 시작은 "안녕하세요, %s 담임교사입니다."로 시작하고, 해당 학년 수준에 맞는 어휘와 톤을 사용해줘. 따뜻하고 신뢰감 가는 어조로 전문성 있게 작성해줘.`, grade, situation, grade)

	resp, err := g.client.Models.GenerateContent(ctx, flashModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("parent notice: %w", err)
	}
	return firstText(resp)
}

// Quiz drafts count multiple-choice questions over the given material.
func (g *Gateway) Quiz(ctx context.Context, content string, count int) (string, error) {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.5)}

	prompt := fmt.Sprintf(`다음 내용을 바탕으로 객관식 퀴즈 %d문항을 만들어줘.
내용: %s
형식:
1. 문제
가) 보기1
나) 보기2
다) 보기3
라) 보기4
정답: (번호)
해설: (간략한 설명)`, count, content)

	resp, err := g.client.Models.GenerateContent(ctx, proModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("quiz: %w", err)
	}
	return firstText(resp)
}

// Commemoration drafts teaching materials for a national observance, with
// search-grounded reference links.
func (g *Gateway) Commemoration(ctx context.Context, occasion string) (string, []models.GroundingLink, error) {
	prompt := fmt.Sprintf(`%s에 관한 계기교육 자료를 만들어줘.
1. 이 날의 의미와 역사적 배경 요약
2. 학생 수준별(초등/중등) 추천 활동 아이디어
3. 수업에 바로 활용할 수 있는 유튜브 영상 링크와 학습지/PPT 자료 링크를 구글 검색을 통해 추천해줘.`, occasion)

	return g.groundedDraft(ctx, prompt, nil, "관련 리소스")
}

var recordGuideSystem = &genai.Content{Parts: []*genai.Part{
	{Text: "당신은 대한민국 교육부의 학교생활기록부 기재요령 전문가입니다. 2026학년도 최신 지침을 완벽하게 숙지하고 있으며, 교사들에게 정확한 가이드를 제공합니다."},
}}

// RecordGuide answers a free-form question about the student-record
// guidelines, grounded on current search results.
func (g *Gateway) RecordGuide(ctx context.Context, question string) (string, []models.GroundingLink, error) {
	prompt := fmt.Sprintf(`질문: %s

위 질문에 대해 "2026학년도 학교생활기록부 기재요령"을 바탕으로 답변해줘.
만약 2026년 최신 기재요령에 명시된 특별한 변경사항이 있다면 강조해주고, 근거 조항이나 주의사항을 상세히 알려줘.
답변은 교사가 현장에서 즉시 참고할 수 있도록 명확하고 전문적으로 작성해줘. 필요하다면 구글 검색을 활용하여 최신 지침(교육부 공식 발표 등)을 확인해줘.`, question)

	return g.groundedDraft(ctx, prompt, recordGuideSystem, "관련 규정 확인")
}

func (g *Gateway) groundedDraft(ctx context.Context, prompt string, system *genai.Content, fallbackTitle string) (string, []models.GroundingLink, error) {
	resp, err := g.client.Models.GenerateContent(ctx, proModel, genai.Text(prompt), searchConfig(system))
	if err != nil {
		return "", nil, fmt.Errorf("grounded draft: %w", err)
	}
	text, err := firstText(resp)
	if err != nil {
		return "", nil, err
	}
	return text, groundingLinks(resp, fallbackTitle), nil
}

// groundingLinks collects the web sources a grounded response cited. Chunks
// without a URI are dropped; untitled sources get the fallback label.
func groundingLinks(resp *genai.GenerateContentResponse, fallbackTitle string) []models.GroundingLink {
	links := []models.GroundingLink{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return links
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = fallbackTitle
		}
		links = append(links, models.GroundingLink{Title: title, URI: chunk.Web.URI})
	}
	return links
}
