package knowledgeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"today-knowledge/cmd/widget/httpclient"
	"today-knowledge/models"
)

const maxBodySize = 5 * 1024 * 1024

// ErrMalformedBody 는 성공 응답의 본문이 JSON 객체가 아닐 때 반환된다.
var ErrMalformedBody = errors.New("knowledge response body is not a JSON object")

type Client struct {
	base *httpclient.BaseClient
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("knowledge-server request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// New 는 serverURL 로 그대로 POST 하는 클라이언트를 만든다.
// serverURL 은 경로까지 포함한 전체 주소다. (예: http://localhost:8000/register)
func New(serverURL string, timeout time.Duration) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: timeout})
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, serverURL)}
}

// Register 는 요청 본문을 JSON 으로 보내고 결과를 디코딩한다.
func (c *Client) Register(ctx context.Context, payload models.KnowledgeRequest) (models.KnowledgeResult, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return models.KnowledgeResult{}, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "", bytes.NewReader(buf))
	if err != nil {
		return models.KnowledgeResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return models.KnowledgeResult{}, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return models.KnowledgeResult{}, fmt.Errorf("knowledge-server response read failed: %w", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.KnowledgeResult{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodeResult(body)
}

func decodeResult(body []byte) (models.KnowledgeResult, error) {
	// null, 배열, 스칼라는 모두 객체가 아니므로 거부한다.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || probe == nil {
		return models.KnowledgeResult{}, ErrMalformedBody
	}

	var out models.KnowledgeResult
	for key, dst := range map[string]*string{"title": &out.Title, "content": &out.Content, "summary": &out.Summary} {
		raw, ok := probe[key]
		if !ok {
			continue
		}
		// 문자열이 아닌 값은 빠진 필드와 같이 취급한다.
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*dst = s
		}
	}
	return out, nil
}
