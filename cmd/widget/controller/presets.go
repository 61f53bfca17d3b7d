package controller

// Presets 는 화면 로드 시 두 프리셋 버튼에 붙는 주제다. 두 값은 서로 다르다.
type Presets [2]string

// InitPresets 는 카탈로그에서 중복 없이 두 주제를 골라 프리셋을 만든다.
func (c *Controller) InitPresets() Presets {
	picked := c.rnd.PickDistinctTopics(len(Presets{}))
	var p Presets
	copy(p[:], picked)
	return p
}

// Apply 는 i 번째 프리셋 주제를 입력창에 복사한다.
// 범위를 벗어나거나 비어 있는 프리셋이면 아무것도 하지 않고 false 를 반환한다.
func (p Presets) Apply(i int, input TopicInput) bool {
	if i < 0 || i >= len(p) || p[i] == "" {
		return false
	}
	input.SetTopic(p[i])
	return true
}
