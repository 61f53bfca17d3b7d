// Package randomizer 는 주제/관점 선택과 샘플링 파라미터 생성을 담당한다.
package randomizer

import (
	"math"
	"math/rand/v2"
	"sync"

	"today-knowledge/catalog"
	"today-knowledge/models"
)

const (
	TemperatureMin = 0.70
	TemperatureMax = 1.00
	TopPMin        = 0.80
	TopPMax        = 0.95
)

// Randomizer 는 카탈로그에 대한 균등 선택과 GenerationConfig 생성을 제공한다.
// 결과는 매 호출마다 달라질 수 있다.
type Randomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New 는 프로세스 전역 난수 소스를 쓰는 Randomizer 를 만든다.
func New() *Randomizer {
	return &Randomizer{}
}

// NewWithSource 는 주어진 소스를 쓰는 Randomizer 를 만든다. 테스트에서 시드를 고정할 때 쓴다.
func NewWithSource(src rand.Source) *Randomizer {
	return &Randomizer{rng: rand.New(src)}
}

func (r *Randomizer) intN(n int) int {
	if r.rng == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *Randomizer) float64() float64 {
	if r.rng == nil {
		return rand.Float64()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// PickTopic 은 카탈로그 주제 하나를 균등 확률로 고른다.
func (r *Randomizer) PickTopic() string {
	return catalog.TopicAt(r.intN(catalog.TopicCount()))
}

// PickAngle 은 관점 하나를 균등 확률로 고른다.
func (r *Randomizer) PickAngle() string {
	return catalog.AngleAt(r.intN(catalog.AngleCount()))
}

// PickDistinctTopics 는 중복 없이 n 개의 주제를 고른다.
// n 이 카탈로그 크기보다 크면 카탈로그 크기만큼만 반환한다.
func (r *Randomizer) PickDistinctTopics(n int) []string {
	total := catalog.TopicCount()
	if n > total {
		n = total
	}
	if n <= 0 {
		return nil
	}

	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	// 앞에서부터 n 칸만 섞는 부분 Fisher-Yates
	out := make([]string, n)
	for i := 0; i < n; i++ {
		j := i + r.intN(total-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = catalog.TopicAt(idx[i])
	}
	return out
}

// GenerateConfig 는 temperature ∈ [0.70, 1.00], topP ∈ [0.80, 0.95] 를 소수 둘째 자리로 반올림해 만든다.
func (r *Randomizer) GenerateConfig() models.GenerationConfig {
	return models.GenerationConfig{
		Temperature: roundTo2(TemperatureMin + r.float64()*(TemperatureMax-TemperatureMin)),
		TopP:        roundTo2(TopPMin + r.float64()*(TopPMax-TopPMin)),
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
