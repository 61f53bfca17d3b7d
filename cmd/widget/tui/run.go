package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"today-knowledge/cmd/widget/controller"
)

// Run 은 위젯을 전체 화면으로 띄우고 사용자가 종료할 때까지 기다린다.
func Run(ctx context.Context, ctrl *controller.Controller, in io.Reader, out io.Writer) error {
	bridge := NewBridge()
	p := tea.NewProgram(
		New(ctx, ctrl, bridge),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	bridge.Attach(p.Send)

	_, err := p.Run()
	return err
}
