package job

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/heyybhargav/personal-newsletter-sub000/usecase/dispatch_usecase"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/logger"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/metrics"
)

// DispatchRunner executes one briefing run. Satisfied by the dispatch
// usecase.
type DispatchRunner interface {
	Run(ctx context.Context, req dispatch_usecase.RunRequest) error
}

// DispatchWorker owns the detached execution of briefing runs. Triggers
// enqueue and return; a fixed pool of workers drains the queue. Run
// contexts are cut loose from the trigger's context, so a closed HTTP
// connection never cancels a run already underway.
type DispatchWorker struct {
	runner     DispatchRunner
	queue      chan dispatch_usecase.RunRequest
	runTimeout time.Duration
	workers    int
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewDispatchWorker(runner DispatchRunner, workers, queueSize int, runTimeout time.Duration) *DispatchWorker {
	if workers < 1 {
		workers = 1
	}
	return &DispatchWorker{
		runner:     runner,
		queue:      make(chan dispatch_usecase.RunRequest, queueSize),
		runTimeout: runTimeout,
		workers:    workers,
	}
}

// Enqueue hands one run to the pool without blocking. A full queue is a
// hard error surfaced to the trigger rather than silent backpressure.
func (w *DispatchWorker) Enqueue(req dispatch_usecase.RunRequest) error {
	select {
	case w.queue <- req:
		return nil
	default:
		metrics.DispatchTotal.WithLabelValues("rejected").Inc()
		return fmt.Errorf("dispatch queue is full")
	}
}

// Start launches the worker pool. The context governs the pool's
// lifetime; individual runs detach from it so shutdown lets in-flight
// runs finish within their own timeout.
func (w *DispatchWorker) Start(ctx context.Context) {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.work(ctx, i)
	}
}

func (w *DispatchWorker) work(ctx context.Context, id int) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.Info("dispatch worker stopping", "worker", id)
			return
		case req, ok := <-w.queue:
			if !ok {
				return
			}
			w.execute(ctx, req)
		}
	}
}

func (w *DispatchWorker) execute(ctx context.Context, req dispatch_usecase.RunRequest) {
	// Detach from the pool context before applying the run timeout: a
	// shutdown signal must not abort a briefing that is already being
	// synthesized or sent.
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.runTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			metrics.DispatchTotal.WithLabelValues("panic").Inc()
			logger.Logger.Error("dispatch run panicked", "email", req.Email, "panic", r)
		}
	}()

	if err := w.runner.Run(runCtx, req); err != nil {
		metrics.DispatchTotal.WithLabelValues("failure").Inc()
		return
	}
	metrics.DispatchTotal.WithLabelValues("success").Inc()
}

// Shutdown stops accepting work and waits for the workers to exit.
func (w *DispatchWorker) Shutdown() {
	w.closeOnce.Do(func() { close(w.queue) })
	w.wg.Wait()
}
