package workers

import "context"

// Workers runs a group of background workers as one unit. Workers start in
// registration order and stop in reverse order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker. On the first failure the already started workers
// are stopped and the error is returned.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				w.workers[j].Stop()
			}
			return err
		}
	}
	return nil
}

// Stop halts every worker in reverse start order and blocks until all have
// exited.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
