package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"today-knowledge/cmd/widget/controller"
	"today-knowledge/models"
)

// ─── messages ────────────────────────────────────────────────────────────────

// LoadingMsg 는 컨트롤러가 로딩 상태로 바꿀 때 전달된다.
type LoadingMsg struct{}

// ResultMsg 는 컨트롤러가 결과(또는 오류 결과)를 그릴 때 전달된다.
type ResultMsg struct {
	Result models.KnowledgeResult
}

// TopicMsg 는 빈 입력 대신 고른 주제를 입력창에 반영할 때 전달된다.
type TopicMsg struct {
	Topic string
}

// ─── bridge ──────────────────────────────────────────────────────────────────

// Bridge 는 tea.Cmd 고루틴에서 호출되는 화면 메서드를 프로그램 메시지로 넘긴다.
type Bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewBridge() *Bridge { return &Bridge{} }

// Attach 는 보통 (*tea.Program).Send 를 연결한다.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) Send(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// snapshotInput 은 제출 시점의 입력값을 들고 다니는 TopicInput 이다.
type snapshotInput struct {
	value  string
	bridge *Bridge
}

func (s snapshotInput) Topic() string         { return s.value }
func (s snapshotInput) SetTopic(topic string) { s.bridge.Send(TopicMsg{Topic: topic}) }

type bridgeSink struct{ bridge *Bridge }

func (s bridgeSink) ShowLoading() { s.bridge.Send(LoadingMsg{}) }
func (s bridgeSink) ShowResult(result models.KnowledgeResult) {
	s.bridge.Send(ResultMsg{Result: result})
}

// fieldInput 은 Update 안에서 textinput 을 바로 고치는 TopicInput 이다.
type fieldInput struct{ field *textinput.Model }

func (f fieldInput) Topic() string { return f.field.Value() }
func (f fieldInput) SetTopic(topic string) {
	f.field.SetValue(topic)
	f.field.CursorEnd()
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model 은 주제 입력창, 프리셋 버튼 두 개, 랜덤 버튼, 로딩 표시, 결과 영역을 가진 위젯이다.
type Model struct {
	ctx     context.Context
	ctrl    *controller.Controller
	bridge  *Bridge
	input   textinput.Model
	spinner spinner.Model
	presets controller.Presets

	loading    bool
	showResult bool
	result     models.KnowledgeResult
	width      int
}

// New 는 위젯 모델을 만들고 프리셋 두 개를 뽑아 둔다.
func New(ctx context.Context, ctrl *controller.Controller, bridge *Bridge) Model {
	ti := textinput.New()
	ti.Placeholder = "궁금한 주제를 입력하세요 (비워 두면 랜덤)"
	ti.CharLimit = 100
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorLavender)

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		bridge:  bridge,
		input:   ti,
		spinner: sp,
		presets: ctrl.InitPresets(),
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) submitCmd() tea.Cmd {
	in := snapshotInput{value: m.input.Value(), bridge: m.bridge}
	sink := bridgeSink{bridge: m.bridge}
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		ctrl.Submit(ctx, in, sink)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case LoadingMsg:
		m.loading = true
		m.showResult = false
		return m, m.spinner.Tick

	case ResultMsg:
		m.loading = false
		m.showResult = true
		m.result = msg.Result
		return m, nil

	case TopicMsg:
		fieldInput{field: &m.input}.SetTopic(msg.Topic)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m, m.submitCmd()
		case "ctrl+r":
			m.ctrl.RandomTopic(fieldInput{field: &m.input})
			return m, nil
		case "f1":
			m.presets.Apply(0, fieldInput{field: &m.input})
			return m, nil
		case "f2":
			m.presets.Apply(1, fieldInput{field: &m.input})
			return m, nil
		case "ctrl+n":
			m.presets = m.ctrl.InitPresets()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("💡 오늘의 1분 지식"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(fmt.Sprintf("F1 ⚖️ %s", m.presets[0])),
		" ",
		buttonStyle.Render(fmt.Sprintf("F2 🌌 %s", m.presets[1])),
		" ",
		buttonStyle.Render("Ctrl+R 🎲 랜덤 주제"),
	))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " AI가 지식을 찾는 중...")
		b.WriteString("\n")
	case m.showResult:
		b.WriteString(renderResult(m.result, m.width))
		b.WriteString("\n")
	}

	if !m.ctrl.Configured() {
		b.WriteString(mutedStyle.Render("서버 주소가 비어 있습니다. --server-url 또는 SERVER_URL 로 지정하세요."))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("Enter 지식 받기 · Ctrl+N 프리셋 다시 뽑기 · Esc 종료"))
	return b.String()
}

// Loading 과 ResultVisible 은 두 표시 영역의 현재 상태를 알려준다.
func (m Model) Loading() bool                  { return m.loading }
func (m Model) ResultVisible() bool            { return m.showResult }
func (m Model) Result() models.KnowledgeResult { return m.result }
func (m Model) Topic() string                  { return m.input.Value() }
func (m Model) Presets() controller.Presets    { return m.presets }
