package observer

import (
	"bankist/pkg/logger"
	"context"
	"sync"
	"time"
)

// Expirer drops sessions whose deadline has passed and reports how many.
type Expirer interface {
	Expire(now time.Time) int
}

// Observer is the logout timer: it periodically drops idle sessions.
type Observer struct {
	sessions  Expirer
	interval  time.Duration
	closeChan chan struct{}
	closeOnce sync.Once
	wg        *sync.WaitGroup
	now       func() time.Time
}

func NewObserver(sessions Expirer, interval time.Duration) *Observer {
	observer := &Observer{
		sessions:  sessions,
		interval:  interval,
		closeChan: make(chan struct{}),
		wg:        &sync.WaitGroup{},
		now:       time.Now,
	}

	return observer
}

func (o *Observer) Start(ctx context.Context) {
	logger.Log.Info("Starting session reaper", logger.Duration("interval", o.interval))

	o.wg.Add(1)
	go o.reaper(ctx)
}

func (o *Observer) Close() {
	logger.Log.Info("Waiting session reaper")

	o.closeOnce.Do(func() {
		close(o.closeChan)
	})
	o.wg.Wait()

	logger.Log.Info("Session reaper is stopped")
}

func (o *Observer) reaper(ctx context.Context) {
	defer o.wg.Done()

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-o.closeChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if expired := o.sessions.Expire(o.now()); expired > 0 {
				logger.Log.Info("expired sessions", logger.Int("count", expired))
			}
		}
	}
}
