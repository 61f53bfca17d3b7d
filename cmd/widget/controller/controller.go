package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"today-knowledge/cmd/internal/logger"
	"today-knowledge/cmd/internal/trace"
	"today-knowledge/cmd/widget/knowledgeclient"
	"today-knowledge/models"
	"today-knowledge/randomizer"
)

// Registrar 는 지식 생성 서버 호출을 추상화한다.
type Registrar interface {
	Register(ctx context.Context, payload models.KnowledgeRequest) (models.KnowledgeResult, error)
}

type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// Controller 는 입력을 읽어 요청을 만들고, 결과나 오류를 화면에 그린다.
// 생성 후에는 상태를 바꾸지 않는다. 동시에 Submit 이 두 번 불리면
// 두 호출이 각자 화면을 갱신하고 마지막 쓰기가 남는다.
type Controller struct {
	serverURL string
	client    Registrar
	rnd       *randomizer.Randomizer
}

type Option func(*Controller)

// WithRandomizer 는 주제/관점/파라미터 선택에 쓸 Randomizer 를 지정한다.
func WithRandomizer(r *randomizer.Randomizer) Option {
	return func(c *Controller) {
		c.rnd = r
	}
}

// WithRegistrar 는 기본 HTTP 클라이언트 대신 쓸 Registrar 를 지정한다.
// 서버 주소가 비어 있으면 지정해도 호출되지 않는다.
func WithRegistrar(r Registrar) Option {
	return func(c *Controller) {
		c.client = r
	}
}

func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		serverURL: strings.TrimSpace(cfg.ServerURL),
		rnd:       randomizer.New(),
	}
	if c.serverURL != "" {
		c.client = knowledgeclient.New(c.serverURL, cfg.RequestTimeout)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit 은 한 번의 요청 주기를 끝까지 수행하고, 화면에 그린 결과를 반환한다.
// 오류는 호출자에게 전달되지 않고 오류 결과로 그려진다.
func (c *Controller) Submit(ctx context.Context, input TopicInput, display DisplaySink) models.KnowledgeResult {
	topic := strings.TrimSpace(input.Topic())
	if topic == "" {
		topic = c.rnd.PickTopic()
		input.SetTopic(topic)
	}

	display.ShowLoading()

	payload := models.NewKnowledgeRequest(topic, c.rnd.PickAngle(), c.rnd.GenerateConfig())

	if trace.RequestIDFromContext(ctx) == "" {
		ctx = trace.WithRequestAndSpan(ctx, trace.GenerateID(), 0)
	}
	fields := logger.Fields{
		"request_id":  trace.RequestIDFromContext(ctx),
		"topic":       payload.Topic,
		"angle":       payload.Angle,
		"temperature": payload.Temperature,
		"top_p":       payload.TopP,
	}
	logger.InfoWithFields("knowledge request prepared", fields)

	result, err := c.request(ctx, payload)
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("knowledge request failed", fields)
		result = ErrorResult(err)
	}

	return Render(display, result)
}

func (c *Controller) request(ctx context.Context, payload models.KnowledgeRequest) (models.KnowledgeResult, error) {
	if c.serverURL == "" || c.client == nil {
		return models.KnowledgeResult{}, ErrConfigurationMissing
	}

	out, err := c.client.Register(ctx, payload)
	if err != nil {
		return models.KnowledgeResult{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	return out, nil
}

// RandomTopic 은 카탈로그에서 임의의 주제를 골라 입력창에 넣는다.
func (c *Controller) RandomTopic(input TopicInput) string {
	topic := c.rnd.PickTopic()
	input.SetTopic(topic)
	return topic
}

// Configured 는 서버 주소가 설정되어 있는지 알려준다.
func (c *Controller) Configured() bool {
	return c.serverURL != ""
}
