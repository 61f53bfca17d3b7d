package controller

import (
	"errors"

	"today-knowledge/models"
)

var (
	// ErrConfigurationMissing 는 서버 주소가 설정되지 않았을 때 네트워크 호출 없이 반환된다.
	ErrConfigurationMissing = errors.New("server url is not configured")
	// ErrNetworkFailure 는 전송 실패, 2xx 가 아닌 응답, 해석할 수 없는 응답 본문을 모두 포함한다.
	ErrNetworkFailure = errors.New("knowledge request failed")
)

const (
	ErrorTitle   = "오류 발생"
	ErrorSummary = "요청을 처리할 수 없습니다."

	MessageConfigurationMissing = "서버 주소가 설정되지 않았습니다. SERVER_URL을 확인해주세요."
	MessageNetworkFailure       = "서버와 통신 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
)

// ErrorResult 는 오류를 화면에 그릴 결과로 바꾼다.
func ErrorResult(err error) models.KnowledgeResult {
	message := MessageNetworkFailure
	if errors.Is(err, ErrConfigurationMissing) {
		message = MessageConfigurationMissing
	}
	return models.KnowledgeResult{
		Title:   ErrorTitle,
		Content: message,
		Summary: ErrorSummary,
	}
}
