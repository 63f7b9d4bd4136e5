package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

// New returns a runner preloaded with workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers a worker. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits until all of them
// returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
