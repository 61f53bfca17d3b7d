package quota

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"

	"today-knowledge/config"
)

// ErrDailyExhausted 는 일일 한도를 모두 사용했을 때 반환된다.
var ErrDailyExhausted = errors.New("daily generation quota exhausted")

// DailyCounter 는 날짜 키별 사용량 카운터이다.
type DailyCounter interface {
	Incr(ctx context.Context, dayKey string) (int64, error)
	Decr(ctx context.Context, dayKey string) error
	Get(ctx context.Context, dayKey string) (int64, error)
}

// GenerationQuotaLimiter 는 지식 생성용 LLM 호출에 대한 분당/일일 한도를 관리한다.
// 분당 제한은 인스턴스마다 따로 적용되고, 일일 카운터는 DailyCounter 구현에 따라
// 인메모리(재시작 시 초기화) 또는 Redis(인스턴스 간 공유)로 동작한다.
type GenerationQuotaLimiter struct {
	dailyLimit int
	counter    DailyCounter

	// limiter 가 nil 이면 분당 제한을 두지 않는다.
	limiter *rate.Limiter

	now func() time.Time
}

// NewGenerationQuotaLimiterFromConfig 는 config.yaml 의 generation_quota 설정으로 limiter 를 만든다.
// 설정 값이 0 이하인 경우에는 해당 방향의 제한을 두지 않는다.
func NewGenerationQuotaLimiterFromConfig(cfg config.AppConfig, counter DailyCounter) *GenerationQuotaLimiter {
	return NewWithCounter(cfg.GenerationQuota.RequestsPerMinute, cfg.GenerationQuota.RequestsPerDay, counter)
}

// New 는 인메모리 일일 카운터를 쓰는 limiter 를 만든다.
func New(requestsPerMinute, requestsPerDay int) *GenerationQuotaLimiter {
	return NewWithCounter(requestsPerMinute, requestsPerDay, nil)
}

func NewWithCounter(requestsPerMinute, requestsPerDay int, counter DailyCounter) *GenerationQuotaLimiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	if counter == nil {
		counter = NewMemoryCounter()
	}

	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), 1)
	}

	return &GenerationQuotaLimiter{
		dailyLimit: requestsPerDay,
		counter:    counter,
		limiter:    limiter,
		now:        time.Now,
	}
}

// WithClock 은 테스트에서 날짜 경계를 흉내내기 위해 시계를 바꾼다.
func (l *GenerationQuotaLimiter) WithClock(now func() time.Time) *GenerationQuotaLimiter {
	l.now = now
	return l
}

// WaitAndReserve 는 생성 호출 전에 분당/일일 한도를 적용한다.
// - 일일 한도 초과: ErrDailyExhausted
// - 카운터 오류, 대기 중 컨텍스트 취소: 해당 오류
func (l *GenerationQuotaLimiter) WaitAndReserve(ctx context.Context) error {
	dayKey := l.dayKey()

	if l.dailyLimit > 0 {
		used, err := l.counter.Incr(ctx, dayKey)
		if err != nil {
			return err
		}
		if used > int64(l.dailyLimit) {
			_ = l.counter.Decr(ctx, dayKey)
			return ErrDailyExhausted
		}
	}

	if l.limiter == nil {
		return nil
	}
	if err := l.limiter.Wait(ctx); err != nil {
		// 호출하지 못했으므로 일일 사용량을 돌려놓는다.
		if l.dailyLimit > 0 {
			_ = l.counter.Decr(context.WithoutCancel(ctx), dayKey)
		}
		return err
	}
	return nil
}

// Remaining 은 오늘 남은 호출 수를 반환한다. 일일 제한이 없으면 -1 이다.
func (l *GenerationQuotaLimiter) Remaining(ctx context.Context) (int, error) {
	if l.dailyLimit <= 0 {
		return -1, nil
	}
	used, err := l.counter.Get(ctx, l.dayKey())
	if err != nil {
		return 0, err
	}
	remaining := l.dailyLimit - int(used)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *GenerationQuotaLimiter) dayKey() string {
	return l.now().UTC().Format("2006-01-02")
}
