package dto

import (
	"strings"

	"today-knowledge/models"
)

const (
	DefaultAngle       = "흥미로운 사실 위주"
	DefaultTemperature = 0.9
	DefaultTopP        = 0.95
)

// KnowledgeRequestDTO 는 지식 생성 요청 본문이다.
// angle, temperature, topP 가 빠지면 기본값을 사용한다.
type KnowledgeRequestDTO struct {
	Topic       string   `json:"topic" binding:"required" example:"심해 생태계"`
	Angle       string   `json:"angle" example:"역사적 배경이나 기원을 중심으로 설명해줘"`
	Temperature *float64 `json:"temperature" example:"0.85"`
	TopP        *float64 `json:"topP" example:"0.9"`
}

// ToModel 은 기본값을 채운 요청 모델로 바꾼다.
func (d KnowledgeRequestDTO) ToModel() models.KnowledgeRequest {
	angle := strings.TrimSpace(d.Angle)
	if angle == "" {
		angle = DefaultAngle
	}
	cfg := models.GenerationConfig{Temperature: DefaultTemperature, TopP: DefaultTopP}
	if d.Temperature != nil {
		cfg.Temperature = *d.Temperature
	}
	if d.TopP != nil {
		cfg.TopP = *d.TopP
	}
	return models.NewKnowledgeRequest(strings.TrimSpace(d.Topic), angle, cfg)
}

type KnowledgeResponseDTO struct {
	Title   string `json:"title" example:"🐙 문어는 심장이 세 개!"`
	Content string `json:"content" example:"문어는 아가미용 심장 두 개와 전신용 심장 하나를 가지고 있어요."`
	Summary string `json:"summary" example:"문어의 심장은 세 개다."`
}

func NewKnowledgeResponseDTO(r models.KnowledgeResult) KnowledgeResponseDTO {
	return KnowledgeResponseDTO{Title: r.Title, Content: r.Content, Summary: r.Summary}
}
