package controller

import (
	"sync"

	"today-knowledge/models"
)

// TopicInput 은 사용자가 주제를 입력하는 입력창이다.
type TopicInput interface {
	Topic() string
	SetTopic(topic string)
}

// DisplaySink 는 로딩 표시와 결과 영역을 가진 화면이다.
// 두 상태는 서로 배타적이다. ShowLoading 은 결과 영역을 숨기고,
// ShowResult 는 로딩 표시를 숨기고 결과를 보여준다.
type DisplaySink interface {
	ShowLoading()
	ShowResult(result models.KnowledgeResult)
}

// TextInput 은 메모리에만 값을 두는 TopicInput 이다.
type TextInput struct {
	mu    sync.Mutex
	value string
}

func NewTextInput(value string) *TextInput {
	return &TextInput{value: value}
}

func (in *TextInput) Topic() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

func (in *TextInput) SetTopic(topic string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.value = topic
}
