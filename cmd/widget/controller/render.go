package controller

import "today-knowledge/models"

const (
	FallbackTitle   = "제목 없음"
	FallbackContent = "내용이 없습니다."
	FallbackSummary = "요약 없음"
)

// Resolve 는 비어 있는 필드를 고정 문구로 채운다.
func Resolve(result models.KnowledgeResult) models.KnowledgeResult {
	if result.Title == "" {
		result.Title = FallbackTitle
	}
	if result.Content == "" {
		result.Content = FallbackContent
	}
	if result.Summary == "" {
		result.Summary = FallbackSummary
	}
	return result
}

// Render 는 결과를 화면에 쓰고 로딩 상태를 결과 상태로 바꾼다.
func Render(display DisplaySink, result models.KnowledgeResult) models.KnowledgeResult {
	resolved := Resolve(result)
	display.ShowResult(resolved)
	return resolved
}
