package backend

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// StartRefreshDaemon periodically re-runs a bounded ingestion until done is
// closed. Disabled when the interval is zero.
func (b *backend) StartRefreshDaemon(done <-chan struct{}) {
	if b.refreshIntervalSeconds <= 0 {
		b.log.Info("refresh daemon disabled")
		return
	}

	b.log.Infof("starting refresh daemon. Interval: %vs, batch size: %v, max batches: %v",
		b.refreshIntervalSeconds, b.refreshBatchSize, b.refreshMaxBatches)

	wait.JitterUntil(b.refresh, time.Duration(b.refreshIntervalSeconds)*time.Second, .002, true, done)
}

func (b *backend) refresh() {
	result := b.Ingest(context.Background(), b.refreshBatchSize, b.refreshMaxBatches, nil)
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			b.log.Warnf("refresh: %s", e)
		}
	}
}
