package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"today-knowledge/generator"
	"today-knowledge/models"
)

type fakeModel struct {
	text   string
	err    error
	model  string
	config *genai.GenerateContentConfig
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		ModelVersion: "gemini-2.0-flash-001",
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 30,
			TotalTokenCount:      42,
		},
	}, nil
}

var sampleRequest = models.KnowledgeRequest{
	Topic:       "심해 생태계",
	Angle:       "조금 무섭거나 오싹한 사실을 강조해줘",
	Temperature: 0.83,
	TopP:        0.91,
}

func TestGeneratePassesSamplingConfigAndPrompt(t *testing.T) {
	fm := &fakeModel{text: `{"title":"🐙 T","content":"C","summary":"S"}`}
	g := generator.New(fm, "gemini-2.0-flash")

	out, llmLog, err := g.Generate(context.Background(), sampleRequest)
	require.NoError(t, err)

	assert.Equal(t, &models.KnowledgeResult{Title: "🐙 T", Content: "C", Summary: "S"}, out)
	assert.Equal(t, "gemini-2.0-flash", fm.model)
	require.NotNil(t, fm.config.Temperature)
	require.NotNil(t, fm.config.TopP)
	assert.InDelta(t, 0.83, *fm.config.Temperature, 1e-6)
	assert.InDelta(t, 0.91, *fm.config.TopP, 1e-6)
	assert.Equal(t, "application/json", fm.config.ResponseMIMEType)
	assert.Equal(t, generator.SYSTEM_INSTRUCTION, fm.config.SystemInstruction.Parts[0].Text)
	assert.Contains(t, fm.prompt, "주제: 심해 생태계")
	assert.Contains(t, fm.prompt, "관점: 조금 무섭거나 오싹한 사실을 강조해줘")

	assert.Equal(t, int64(42), llmLog.TokenUsage.TotalTokens)
	assert.Equal(t, "gemini-2.0-flash-001", llmLog.ModelVersion)
}

func TestGenerateReturnsModelError(t *testing.T) {
	g := generator.New(&fakeModel{err: errors.New("quota exceeded")}, "m")

	out, llmLog, err := g.Generate(context.Background(), sampleRequest)
	assert.Nil(t, out)
	assert.EqualError(t, err, "quota exceeded")
	assert.NotNil(t, llmLog)
}

func TestParseKnowledge(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    *models.KnowledgeResult
		wantErr bool
	}{
		{name: "object", raw: `{"title":"T","content":"C","summary":"S"}`, want: &models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"}},
		{name: "list takes first", raw: ` [{"title":"A"},{"title":"B"}]`, want: &models.KnowledgeResult{Title: "A"}},
		{name: "empty list", raw: `[]`, wantErr: true},
		{name: "empty text", raw: "  ", wantErr: true},
		{name: "not json", raw: "그냥 텍스트", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := generator.ParseKnowledge(testCase.raw)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestParseKnowledgeEmptyListSentinel(t *testing.T) {
	_, err := generator.ParseKnowledge("[]")
	assert.ErrorIs(t, err, generator.ErrEmptyList)
}

func TestFallbackResultCarriesErrorText(t *testing.T) {
	out := generator.FallbackResult(errors.New("boom"))
	assert.Equal(t, generator.FallbackTitle, out.Title)
	assert.Contains(t, out.Content, "(에러 내용: boom)")
	assert.Equal(t, generator.FallbackSummary, out.Summary)
}
