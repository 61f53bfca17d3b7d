package router_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-knowledge/docs"
)

func TestSwaggerDocumentsMountedPaths(t *testing.T) {
	raw := docs.SwaggerInfo.ReadDoc()

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/", doc.BasePath)
	assert.Contains(t, doc.Paths, "/health")
	assert.Contains(t, doc.Paths, "/register")
	assert.Contains(t, doc.Paths, "/api/v1/knowledge")
}
