package models

// GenerationConfig 는 요청마다 새로 뽑는 샘플링 파라미터 쌍이다.
type GenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// KnowledgeRequest 는 위젯이 지식 생성 서버로 보내는 요청 본문이다.
// 요청마다 한 번 만들어지고 이후 수정하지 않는다.
type KnowledgeRequest struct {
	Topic       string  `json:"topic"`
	Angle       string  `json:"angle"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

// NewKnowledgeRequest 는 주제, 관점, 샘플링 파라미터로 요청 본문을 만든다.
func NewKnowledgeRequest(topic, angle string, cfg GenerationConfig) KnowledgeRequest {
	return KnowledgeRequest{
		Topic:       topic,
		Angle:       angle,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	}
}

// KnowledgeResult 는 서버가 돌려준 결과이거나 오류를 표현하려고 만든 결과다.
// 모든 필드는 응답에서 빠질 수 있다.
type KnowledgeResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}
