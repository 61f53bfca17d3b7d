package controller_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"today-knowledge/cmd/widget/controller"
	"today-knowledge/models"
)

func TestResolveFillsEmptyFields(t *testing.T) {
	testCases := []struct {
		name string
		in   models.KnowledgeResult
		want models.KnowledgeResult
	}{
		{
			name: "all present",
			in:   models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"},
			want: models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"},
		},
		{
			name: "all empty",
			want: models.KnowledgeResult{
				Title:   controller.FallbackTitle,
				Content: controller.FallbackContent,
				Summary: controller.FallbackSummary,
			},
		},
		{
			name: "summary missing",
			in:   models.KnowledgeResult{Title: "T", Content: "C"},
			want: models.KnowledgeResult{Title: "T", Content: "C", Summary: controller.FallbackSummary},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, controller.Resolve(testCase.in))
		})
	}
}

func TestRenderShowsResolvedResultOnce(t *testing.T) {
	sink := &recordingSink{}
	got := controller.Render(sink, models.KnowledgeResult{Title: "T"})

	assert.Equal(t, []string{"result"}, sink.events)
	assert.Equal(t, got, sink.results[0])
	assert.Equal(t, controller.FallbackContent, got.Content)
}

func TestErrorResultMapsKinds(t *testing.T) {
	missing := controller.ErrorResult(controller.ErrConfigurationMissing)
	assert.Equal(t, controller.MessageConfigurationMissing, missing.Content)

	wrapped := controller.ErrorResult(fmt.Errorf("%w: status 500", controller.ErrNetworkFailure))
	assert.Equal(t, controller.MessageNetworkFailure, wrapped.Content)

	other := controller.ErrorResult(errors.New("anything else"))
	assert.Equal(t, controller.ErrorTitle, other.Title)
	assert.Equal(t, controller.MessageNetworkFailure, other.Content)
	assert.Equal(t, controller.ErrorSummary, other.Summary)
}
