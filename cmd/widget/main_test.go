package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-knowledge/catalog"
)

func TestTopicsCommandListsCatalog(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"topics"})

	require.NoError(t, cmd.Execute())
	for _, topic := range catalog.Topics() {
		assert.Contains(t, out.String(), topic)
	}
}

func TestAskCommandRendersServerResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"문어는 심장이 세 개","content":"아가미 심장 둘, 전신 심장 하나."}`))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"ask", "--config", t.TempDir(), "--server-url", srv.URL, "심해", "생태계"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "문어는 심장이 세 개")
	assert.Contains(t, out.String(), "요약 없음")
}

func TestTUICommandRefusesNonTerminal(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"tui", "--config", t.TempDir()})

	assert.Error(t, cmd.Execute())
}
