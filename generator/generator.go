package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"today-knowledge/models"
)

const SYSTEM_INSTRUCTION = `
너는 세상에서 가장 잡학다식하고 유머러스한 '지식 큐레이터'야.
사용자가 주제를 주면, 아주 흥미로운 1분 지식 콘텐츠를 생성해야 해.

[필수 규칙]
1. 반드시 오직 '하나의' 지식만 생성할 것. (여러 개 금지)
2. JSON Array([])를 사용하지 말고, 단일 JSON Object({})로 반환할 것.
3. 다음 형식을 정확히 지킬 것:
{
    "title": "제목 (이모지 포함)",
    "content": "내용 본문 (3~4문장)",
    "summary": "한 줄 요약"
}
`

const USER_PROMPT_TEMPLATE = `
주제: %s
관점: %s

위 주제에 대해 선택된 관점으로 사람들이 잘 모르는 흥미로운 사실을 딱 하나만 알려줘.
`

const (
	FallbackTitle   = "앗! AI가 생각에 잠겼어요 😵"
	FallbackSummary = "서버 통신 오류 발생"
)

// ErrEmptyList 는 모델이 빈 JSON 배열을 돌려줬을 때 반환된다.
var ErrEmptyList = errors.New("model returned an empty list")

// ContentModel 은 genai 의 Models 서비스에서 필요한 부분만 추린 인터페이스다.
type ContentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type LLMRequestLog struct {
	Prompt       string
	Response     string
	LatencyMs    int64
	TokenUsage   TokenUsage
	ModelName    string
	ModelVersion string
	GeneratedAt  time.Time
}

type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

type Generator struct {
	model     ContentModel
	modelName string
}

// NewGeminiGenerator 는 Gemini API 클라이언트를 만들어 Generator 를 반환한다.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return New(client.Models, modelName), nil
}

func New(model ContentModel, modelName string) *Generator {
	return &Generator{model: model, modelName: modelName}
}

func (g *Generator) ModelName() string { return g.modelName }

// UserPrompt 는 주제와 관점으로 사용자 프롬프트를 만든다.
func UserPrompt(topic, angle string) string {
	return fmt.Sprintf(USER_PROMPT_TEMPLATE, topic, angle)
}

// Generate 는 요청 하나에 대해 지식 결과를 만든다.
// 오류가 나도 log 는 가능한 만큼 채워서 반환한다.
func (g *Generator) Generate(ctx context.Context, req models.KnowledgeRequest) (*models.KnowledgeResult, *LLMRequestLog, error) {
	startTime := time.Now()
	prompt := UserPrompt(req.Topic, req.Angle)

	llmLog := &LLMRequestLog{
		Prompt:    fmt.Sprintf("%s\n\n%s", SYSTEM_INSTRUCTION, prompt),
		ModelName: g.modelName,
	}

	result, err := g.model.GenerateContent(
		ctx,
		g.modelName,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SYSTEM_INSTRUCTION}}},
			Temperature:       genai.Ptr(float32(req.Temperature)),
			TopP:              genai.Ptr(float32(req.TopP)),
			ResponseMIMEType:  "application/json",
		},
	)
	llmLog.LatencyMs = time.Since(startTime).Milliseconds()
	llmLog.GeneratedAt = time.Now()
	if err != nil {
		return nil, llmLog, err
	}
	if result == nil {
		return nil, llmLog, fmt.Errorf("model returned no response")
	}

	raw := result.Text()
	llmLog.Response = raw
	llmLog.ModelVersion = result.ModelVersion
	if result.UsageMetadata != nil {
		llmLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	knowledge, err := ParseKnowledge(raw)
	if err != nil {
		return nil, llmLog, err
	}
	return knowledge, llmLog, nil
}

// ParseKnowledge 는 모델 응답을 단일 결과로 해석한다.
// 모델이 배열을 돌려주면 첫 번째 항목만 사용한다.
func ParseKnowledge(raw string) (*models.KnowledgeResult, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("model returned empty text")
	}

	if strings.HasPrefix(text, "[") {
		var list []models.KnowledgeResult
		if err := json.Unmarshal([]byte(text), &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, ErrEmptyList
		}
		return &list[0], nil
	}

	var out models.KnowledgeResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FallbackResult 는 생성 실패를 사용자에게 보여줄 결과로 바꾼다.
func FallbackResult(err error) models.KnowledgeResult {
	return models.KnowledgeResult{
		Title:   FallbackTitle,
		Content: fmt.Sprintf("일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.\n(에러 내용: %s)", err),
		Summary: FallbackSummary,
	}
}
