package batch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reporadar/reporadar/internal/models"
)

const defaultWorkers = 3

// Processor runs a function over a fixed number of items with bounded
// concurrency. A failing item is counted and skipped; it never stops the
// other items.
type Processor struct {
	workers int
}

// NewProcessor creates a processor running at most workers items at a time
func NewProcessor(workers int) *Processor {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Processor{workers: workers}
}

// Process calls fn once for every index in [0, total). It returns the final
// progress, and ctx.Err() if the context ended before all items ran. Each call
// keeps its own counters, so one Processor can serve concurrent callers.
func (p *Processor) Process(ctx context.Context, total int, fn func(ctx context.Context, index int) error) (*models.BatchProgress, error) {
	now := time.Now()
	progress := &models.BatchProgress{
		TotalItems:     total,
		StartTime:      now,
		LastUpdateTime: now,
	}
	if total <= 0 {
		return progress, nil
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			break
		}
		index := i
		g.Go(func() error {
			err := fn(ctx, index)

			mu.Lock()
			defer mu.Unlock()
			progress.ProcessedItems++
			if err != nil {
				progress.FailedItems++
			}
			progress.LastUpdateTime = time.Now()
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return progress, err
	}
	return progress, nil
}
