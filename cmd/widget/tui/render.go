package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"today-knowledge/models"
)

const summaryLabel = "📌 한 줄 요약: "

const defaultWidth = 72

// renderResult 는 결과 영역 세 칸(제목/내용/요약)을 그린다.
// result 는 이미 대체 문구가 채워진 상태여야 한다.
func renderResult(result models.KnowledgeResult, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - resultStyle.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Width(inner).Render(result.Title),
		"",
		contentStyle.Width(inner).Render(result.Content),
		"",
		summaryStyle.Width(inner).Render(summaryLabel+result.Summary),
	)
	return resultStyle.Render(body)
}

// ConsoleSink 는 대화형 화면 없이 결과를 w 에 그리는 DisplaySink 이다.
type ConsoleSink struct {
	w     io.Writer
	width int
}

func NewConsoleSink(w io.Writer, width int) *ConsoleSink {
	return &ConsoleSink{w: w, width: width}
}

func (s *ConsoleSink) ShowLoading() {
	fmt.Fprintln(s.w, mutedStyle.Render("⏳ AI가 지식을 찾는 중..."))
}

func (s *ConsoleSink) ShowResult(result models.KnowledgeResult) {
	fmt.Fprintln(s.w, renderResult(result, s.width))
}
