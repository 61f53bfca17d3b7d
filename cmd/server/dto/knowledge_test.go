package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"today-knowledge/cmd/server/dto"
	"today-knowledge/models"
)

func TestToModelAppliesDefaults(t *testing.T) {
	got := dto.KnowledgeRequestDTO{Topic: "  우주 탐사  "}.ToModel()

	assert.Equal(t, models.KnowledgeRequest{
		Topic:       "우주 탐사",
		Angle:       dto.DefaultAngle,
		Temperature: dto.DefaultTemperature,
		TopP:        dto.DefaultTopP,
	}, got)
}

func TestToModelKeepsExplicitValues(t *testing.T) {
	temp, topP := 0.0, 0.8
	got := dto.KnowledgeRequestDTO{
		Topic:       "미술",
		Angle:       "재미있는 비유",
		Temperature: &temp,
		TopP:        &topP,
	}.ToModel()

	assert.Equal(t, "재미있는 비유", got.Angle)
	assert.Equal(t, 0.0, got.Temperature)
	assert.Equal(t, 0.8, got.TopP)
}
