package imagesearch

import (
	"sync"
	"time"
)

// providerThrottle - независимый минимальный интервал между вызовами
// каждого провайдера. Вызов раньше интервала пропускается для этого запроса,
// не ставится в очередь и не повторяется: полнота сознательно разменяна
// на отзывчивость под пиковой нагрузкой.
type providerThrottle struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall map[string]time.Time
	now      func() time.Time // подменяется в тестах
}

func newProviderThrottle(interval time.Duration) *providerThrottle {
	return &providerThrottle{
		interval: interval,
		lastCall: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow возвращает true и фиксирует вызов, если интервал провайдера истек.
func (t *providerThrottle) Allow(provider string) bool {
	if t.interval <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.lastCall[provider]; ok && now.Sub(last) < t.interval {
		return false
	}
	t.lastCall[provider] = now
	return true
}
