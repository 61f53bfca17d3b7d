package tui_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-knowledge/catalog"
	"today-knowledge/cmd/widget/controller"
	"today-knowledge/cmd/widget/tui"
	"today-knowledge/models"
)

type collector struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (c *collector) send(msg tea.Msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func newModel(t *testing.T) (tui.Model, *collector) {
	t.Helper()
	bridge := tui.NewBridge()
	col := &collector{}
	bridge.Attach(col.send)
	return tui.New(context.Background(), controller.New(controller.Config{}), bridge), col
}

func update(t *testing.T, m tui.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(tui.Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewAssignsDistinctPresets(t *testing.T) {
	m, _ := newModel(t)
	p := m.Presets()
	assert.NotEqual(t, p[0], p[1])
	assert.True(t, catalog.Contains(p[0]))
	assert.True(t, catalog.Contains(p[1]))
}

func TestPresetKeysCopyTopicIntoInput(t *testing.T) {
	m, _ := newModel(t)
	p := m.Presets()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, p[1], m.Topic())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, p[0], m.Topic())
}

func TestRandomKeyFillsCatalogTopic(t *testing.T) {
	m, _ := newModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, catalog.Contains(m.Topic()))
}

func TestLoadingAndResultAreExclusive(t *testing.T) {
	m, _ := newModel(t)

	m, cmd := update(t, m, tui.LoadingMsg{})
	assert.True(t, m.Loading())
	assert.False(t, m.ResultVisible())
	assert.NotNil(t, cmd)

	result := models.KnowledgeResult{Title: "T", Content: "C", Summary: "S"}
	m, _ = update(t, m, tui.ResultMsg{Result: result})
	assert.False(t, m.Loading())
	assert.True(t, m.ResultVisible())
	assert.Equal(t, result, m.Result())
	assert.Contains(t, m.View(), "📌 한 줄 요약: S")

	m, _ = update(t, m, tui.LoadingMsg{})
	assert.True(t, m.Loading())
	assert.False(t, m.ResultVisible())
	assert.NotContains(t, m.View(), "📌 한 줄 요약")
}

func TestEnterRunsSubmitThroughBridge(t *testing.T) {
	m, col := newModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	require.Len(t, col.msgs, 3)
	topicMsg, ok := col.msgs[0].(tui.TopicMsg)
	require.True(t, ok)
	assert.True(t, catalog.Contains(topicMsg.Topic))
	assert.IsType(t, tui.LoadingMsg{}, col.msgs[1])
	resultMsg, ok := col.msgs[2].(tui.ResultMsg)
	require.True(t, ok)
	assert.Equal(t, controller.MessageConfigurationMissing, resultMsg.Result.Content)

	for _, msg := range col.msgs {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, topicMsg.Topic, m.Topic())
	assert.True(t, m.ResultVisible())
	assert.Equal(t, controller.ErrorTitle, m.Result().Title)
}

func TestConsoleSinkWritesResult(t *testing.T) {
	var buf bytes.Buffer
	sink := tui.NewConsoleSink(&buf, 60)

	controller.New(controller.Config{}).Submit(context.Background(), controller.NewTextInput("우주와 천문학"), sink)

	out := buf.String()
	assert.Contains(t, out, "AI가 지식을 찾는 중")
	assert.Contains(t, out, controller.ErrorTitle)
	assert.Contains(t, out, "📌 한 줄 요약:")
}
