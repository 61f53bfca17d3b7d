package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-knowledge/cmd/server/quota"
	"today-knowledge/cmd/server/services"
	"today-knowledge/generator"
	"today-knowledge/models"
)

type stubGenerator struct {
	out   *models.KnowledgeResult
	err   error
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, _ models.KnowledgeRequest) (*models.KnowledgeResult, *generator.LLMRequestLog, error) {
	g.calls++
	return g.out, &generator.LLMRequestLog{Prompt: "p", Response: "r", TokenUsage: generator.TokenUsage{TotalTokens: 7}}, g.err
}

func (g *stubGenerator) ModelName() string { return "stub-model" }

type memoryLogs struct {
	entries []models.GenerationLog
	err     error
}

func (m *memoryLogs) Insert(_ context.Context, log models.GenerationLog) error {
	m.entries = append(m.entries, log)
	return m.err
}

var req = models.KnowledgeRequest{Topic: "화학 원소", Angle: "재미있는 비유", Temperature: 0.8, TopP: 0.9}

func TestGenerateReturnsModelResult(t *testing.T) {
	gen := &stubGenerator{out: &models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"}}
	logs := &memoryLogs{}
	svc := services.NewKnowledgeService(gen, quota.New(0, 0), logs)

	out, kerr := svc.Generate(context.Background(), req)
	require.Nil(t, kerr)
	assert.Equal(t, models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"}, out)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, "화학 원소", entry.Topic)
	assert.Equal(t, "stub-model", entry.ModelName)
	assert.Equal(t, int64(7), entry.TotalTokens)
	assert.Nil(t, entry.ErrorMessage)
}

func TestGenerateFallsBackOnModelError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream 503")}
	logs := &memoryLogs{err: errors.New("mongo down")}
	svc := services.NewKnowledgeService(gen, nil, logs)

	out, kerr := svc.Generate(context.Background(), req)
	require.Nil(t, kerr)
	assert.Equal(t, generator.FallbackTitle, out.Title)
	assert.Contains(t, out.Content, "upstream 503")
	assert.Equal(t, generator.FallbackSummary, out.Summary)

	require.Len(t, logs.entries, 1)
	require.NotNil(t, logs.entries[0].ErrorMessage)
	assert.Equal(t, "upstream 503", *logs.entries[0].ErrorMessage)
}

func TestGenerateRejectsWhenDailyQuotaExhausted(t *testing.T) {
	gen := &stubGenerator{out: &models.KnowledgeResult{Title: "T"}}
	svc := services.NewKnowledgeService(gen, quota.New(0, 1), nil)

	_, kerr := svc.Generate(context.Background(), req)
	require.Nil(t, kerr)

	_, kerr = svc.Generate(context.Background(), req)
	require.NotNil(t, kerr)
	assert.Equal(t, http.StatusTooManyRequests, kerr.StatusCode)
	assert.Equal(t, "quota_exhausted", kerr.ErrorCode)
	assert.ErrorIs(t, kerr, quota.ErrDailyExhausted)
	assert.Equal(t, 1, gen.calls)
}
