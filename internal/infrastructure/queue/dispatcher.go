package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklane/inventory-system/internal/api/metrics"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock movements to a fixed set of workers using
// consistent hashing on the item id, guaranteeing per-item ordering of
// quantity adjustments.
type Dispatcher struct {
	workers []chan ports.StockMovementInput
	service ports.StockService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.StockService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StockMovementInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StockMovementInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a movement to the worker responsible for its item.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(movement ports.StockMovementInput) {
	idx := d.shardIndex(movement.ItemID)
	d.workers[idx] <- movement
	metrics.StockQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an item id deterministically to a worker index.
func (d *Dispatcher) shardIndex(itemID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(itemID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StockMovementInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case movement, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			if err := d.service.Process(ctx, movement); err != nil {
				metrics.StockErrorsTotal.WithLabelValues("process_failed").Inc()
				d.log.Error().Err(err).
					Str("item_id", movement.ItemID).
					Int("worker_id", id).
					Msg("stock movement processing failed")
			} else {
				metrics.StockProcessedTotal.WithLabelValues(movement.Kind).Inc()
				metrics.StockProcessingDuration.WithLabelValues(movement.Kind).Observe(time.Since(start).Seconds())
			}
			metrics.StockQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
