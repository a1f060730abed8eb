package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vendotha/mini-event-finder/internal/pkg/logger"
	"github.com/vendotha/mini-event-finder/internal/pkg/metrics"
)

// EventCounter はストアのイベント数を返すインターフェース
type EventCounter interface {
	Count(ctx context.Context) (int, error)
}

// StoreStatsCollector はストアの統計をメトリクスに反映するワーカー
type StoreStatsCollector struct {
	counter  EventCounter
	metrics  *metrics.Metrics
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewStoreStatsCollector は新しいコレクターを作成
func NewStoreStatsCollector(counter EventCounter, m *metrics.Metrics, interval time.Duration) *StoreStatsCollector {
	return &StoreStatsCollector{
		counter:  counter,
		metrics:  m,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start はコレクターを開始
func (c *StoreStatsCollector) Start(ctx context.Context) {
	logger.Info("ストア統計コレクター開始", zap.Duration("interval", c.interval))

	// 起動直後に一度反映してからティッカーに入る
	c.collect(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("ストア統計コレクター停止（コンテキストキャンセル）")
			return
		case <-c.stopCh:
			logger.Info("ストア統計コレクター停止（シグナル受信）")
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

// Stop はコレクターを停止
func (c *StoreStatsCollector) Stop() {
	close(c.stopCh)
	<-c.doneCh
}

// collect はストアのイベント数をゲージに反映する
func (c *StoreStatsCollector) collect(ctx context.Context) {
	count, err := c.counter.Count(ctx)
	if err != nil {
		logger.Error("ストア統計の取得失敗", zap.Error(err))
		return
	}

	c.metrics.EventsInStore.Set(float64(count))
	logger.Debug("ストア統計を更新", zap.Int("events", count))
}
