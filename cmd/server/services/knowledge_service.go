package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"today-knowledge/cmd/internal/logger"
	"today-knowledge/cmd/internal/trace"
	"today-knowledge/cmd/server/quota"
	"today-knowledge/generator"
	"today-knowledge/models"
)

const logWriteTimeout = 3 * time.Second

type Generator interface {
	Generate(ctx context.Context, req models.KnowledgeRequest) (*models.KnowledgeResult, *generator.LLMRequestLog, error)
	ModelName() string
}

type Quota interface {
	WaitAndReserve(ctx context.Context) error
	Remaining(ctx context.Context) (int, error)
}

// GenerationLogWriter 는 생성 로그 저장소이다. nil 이면 로그를 남기지 않는다.
type GenerationLogWriter interface {
	Insert(ctx context.Context, log models.GenerationLog) error
}

type KnowledgeError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *KnowledgeError) Error() string {
	if e == nil {
		return "generation_unavailable"
	}
	return e.ErrorCode
}

func (e *KnowledgeError) Unwrap() error { return e.Cause }

type KnowledgeService struct {
	gen   Generator
	quota Quota
	logs  GenerationLogWriter
}

func NewKnowledgeService(gen Generator, q Quota, logs GenerationLogWriter) *KnowledgeService {
	return &KnowledgeService{gen: gen, quota: q, logs: logs}
}

// Generate 는 한도를 확인한 뒤 지식 하나를 생성한다.
// 모델 호출이나 응답 해석이 실패하면 오류 대신 대체 결과를 돌려준다.
func (s *KnowledgeService) Generate(ctx context.Context, req models.KnowledgeRequest) (models.KnowledgeResult, *KnowledgeError) {
	if s.quota != nil {
		if err := s.quota.WaitAndReserve(ctx); err != nil {
			if errors.Is(err, quota.ErrDailyExhausted) {
				return models.KnowledgeResult{}, &KnowledgeError{StatusCode: http.StatusTooManyRequests, ErrorCode: "quota_exhausted", Cause: err}
			}
			return models.KnowledgeResult{}, &KnowledgeError{StatusCode: http.StatusServiceUnavailable, ErrorCode: "generation_unavailable", Cause: err}
		}
	}

	requestedAt := time.Now()
	out, llmLog, err := s.gen.Generate(ctx, req)
	s.writeLog(ctx, req, llmLog, requestedAt, err)

	fields := logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
		"topic":      req.Topic,
		"angle":      req.Angle,
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("knowledge generation failed", fields)
		return generator.FallbackResult(err), nil
	}
	if llmLog != nil {
		fields["latency_ms"] = llmLog.LatencyMs
		fields["total_tokens"] = llmLog.TokenUsage.TotalTokens
	}
	if s.quota != nil {
		if remaining, err := s.quota.Remaining(ctx); err == nil && remaining >= 0 {
			fields["quota_remaining"] = remaining
		}
	}
	logger.InfoWithFields("knowledge generated", fields)
	return *out, nil
}

func (s *KnowledgeService) writeLog(ctx context.Context, req models.KnowledgeRequest, llmLog *generator.LLMRequestLog, requestedAt time.Time, genErr error) {
	if s.logs == nil {
		return
	}

	entry := models.GenerationLog{
		Topic:       req.Topic,
		Angle:       req.Angle,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		ModelName:   s.gen.ModelName(),
		RequestedAt: requestedAt,
		CompletedAt: time.Now(),
	}
	if llmLog != nil {
		entry.ModelVersion = llmLog.ModelVersion
		entry.InputTokens = llmLog.TokenUsage.InputTokens
		entry.OutputTokens = llmLog.TokenUsage.OutputTokens
		entry.TotalTokens = llmLog.TokenUsage.TotalTokens
		entry.DurationMs = llmLog.LatencyMs
		entry.InputPrompt = llmLog.Prompt
		entry.OutputResponse = llmLog.Response
	}
	if genErr != nil {
		msg := genErr.Error()
		entry.ErrorMessage = &msg
	}

	// 요청이 끝나도 저장은 마무리되도록 취소 신호는 떼어낸다.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logWriteTimeout)
	defer cancel()
	if err := s.logs.Insert(writeCtx, entry); err != nil {
		logger.WarnWithFields("failed to store generation log", logger.Fields{
			"request_id": trace.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
	}
}
