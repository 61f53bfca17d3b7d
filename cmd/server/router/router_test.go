package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-knowledge/cmd/internal/trace"
	"today-knowledge/cmd/server/dto"
	"today-knowledge/cmd/server/quota"
	"today-knowledge/cmd/server/router"
	"today-knowledge/cmd/server/services"
	"today-knowledge/generator"
	"today-knowledge/models"
)

type recordingGenerator struct {
	got models.KnowledgeRequest
	out *models.KnowledgeResult
	err error
}

func (g *recordingGenerator) Generate(_ context.Context, req models.KnowledgeRequest) (*models.KnowledgeResult, *generator.LLMRequestLog, error) {
	g.got = req
	return g.out, nil, g.err
}

func (g *recordingGenerator) ModelName() string { return "test-model" }

func newHandler(gen *recordingGenerator, q *quota.GenerationQuotaLimiter) http.Handler {
	gin.SetMode(gin.TestMode)
	return router.New(services.NewKnowledgeService(gen, q, nil), []string{"http://widget.test"})
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRegisterAppliesDefaults(t *testing.T) {
	gen := &recordingGenerator{out: &models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"}}
	h := newHandler(gen, quota.New(0, 0))

	w := post(t, h, "/register", `{"topic":"고대 문명"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.KnowledgeResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.KnowledgeResponseDTO{Title: "T", Content: "C", Summary: "S"}, resp)

	assert.Equal(t, "고대 문명", gen.got.Topic)
	assert.Equal(t, dto.DefaultAngle, gen.got.Angle)
	assert.Equal(t, dto.DefaultTemperature, gen.got.Temperature)
	assert.Equal(t, dto.DefaultTopP, gen.got.TopP)
	assert.NotEmpty(t, w.Header().Get(trace.HeaderRequestID))
}

func TestVersionedRouteSharesHandler(t *testing.T) {
	gen := &recordingGenerator{out: &models.KnowledgeResult{Title: "T"}}
	h := newHandler(gen, quota.New(0, 0))

	w := post(t, h, "/api/v1/knowledge", `{"topic":"수학","angle":"재미있는 비유","temperature":0.71,"topP":0.82}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "재미있는 비유", gen.got.Angle)
	assert.Equal(t, 0.71, gen.got.Temperature)
	assert.Equal(t, 0.82, gen.got.TopP)
}

func TestRegisterRejectsMissingTopic(t *testing.T) {
	for _, body := range []string{`{}`, `{"topic":"   "}`, `not json`} {
		w := post(t, newHandler(&recordingGenerator{}, quota.New(0, 0)), "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"invalid_request"}`, w.Body.String())
	}
}

func TestRegisterReturnsFallbackWithOK(t *testing.T) {
	gen := &recordingGenerator{err: errors.New("model exploded")}
	w := post(t, newHandler(gen, quota.New(0, 0)), "/register", `{"topic":"미술"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.KnowledgeResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, generator.FallbackTitle, resp.Title)
	assert.Contains(t, resp.Content, "model exploded")
}

func TestRegisterQuotaExhausted(t *testing.T) {
	gen := &recordingGenerator{out: &models.KnowledgeResult{Title: "T"}}
	h := newHandler(gen, quota.New(0, 1))

	require.Equal(t, http.StatusOK, post(t, h, "/register", `{"topic":"음악"}`).Code)

	w := post(t, h, "/register", `{"topic":"음악"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"quota_exhausted"}`, w.Body.String())
}

func TestHealthAndCORS(t *testing.T) {
	h := newHandler(&recordingGenerator{}, quota.New(0, 0))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://widget.test")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "http://widget.test", w.Header().Get("Access-Control-Allow-Origin"))
}
