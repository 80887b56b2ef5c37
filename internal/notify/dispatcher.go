package notify

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dispatcher fans events out to a Publisher on a fixed set of workers, keeping
// publish latency off the booking path.
type Dispatcher struct {
	publisher Publisher
	pool      chan DealActivated
	g         errgroup.Group
}

func NewDispatcher(publisher Publisher, workers int) *Dispatcher {
	d := &Dispatcher{
		publisher: publisher,
		pool:      make(chan DealActivated, workers),
	}
	for i := 0; i < workers; i++ {
		d.g.Go(d.worker)
	}
	return d
}

func (d *Dispatcher) worker() error {
	for event := range d.pool {
		if err := d.publisher.Publish(context.Background(), event); err != nil {
			zap.L().Error("event publish failed",
				zap.String("event_id", event.EventID),
				zap.Int("deal_id", event.DealID),
				zap.Error(err))
		}
	}
	return nil
}

// Dispatch enqueues the event. It never blocks the caller past ctx and never
// reports delivery failures back.
func (d *Dispatcher) Dispatch(ctx context.Context, event DealActivated) {
	select {
	case <-ctx.Done():
		zap.L().Error("event dropped", zap.String("event_id", event.EventID), zap.Error(ctx.Err()))
	case d.pool <- event:
	}
}

// Close stops accepting events and waits for the workers to drain the queue.
func (d *Dispatcher) Close() {
	close(d.pool)
	_ = d.g.Wait()
}
