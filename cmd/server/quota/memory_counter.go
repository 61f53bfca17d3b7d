package quota

import (
	"context"
	"sync"
)

// MemoryCounter 는 가장 최근 날짜 하나만 기억하는 인메모리 카운터이다.
// 날짜 키가 바뀌면 사용량이 0 부터 다시 시작한다.
type MemoryCounter struct {
	mu     sync.Mutex
	dayKey string
	used   int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (c *MemoryCounter) Incr(_ context.Context, dayKey string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roll(dayKey)
	c.used++
	return c.used, nil
}

func (c *MemoryCounter) Decr(_ context.Context, dayKey string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roll(dayKey)
	if c.used > 0 {
		c.used--
	}
	return nil
}

func (c *MemoryCounter) Get(_ context.Context, dayKey string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roll(dayKey)
	return c.used, nil
}

func (c *MemoryCounter) roll(dayKey string) {
	if c.dayKey != dayKey {
		c.dayKey = dayKey
		c.used = 0
	}
}
