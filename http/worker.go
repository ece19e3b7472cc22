package http

import (
	"errors"
	"log/slog"
	"net"
	"sync"
)

var (
	ErrZeroPoolSize = errors.New("http: worker pool cannot be created with size 0")
	ErrPoolClosed   = errors.New("http: worker pool is shut down")
)

// Job is the unit of work for one accepted connection.
type Job struct {
	Conn net.Conn
	Root string
}

type JobHandler func(job Job)

// WorkerPool runs submitted jobs on a fixed set of goroutines that share a
// single queue. Each job is received by exactly one worker. The pool does
// not look at job outcomes; a handler that can panic must recover itself.
type WorkerPool struct {
	Handler JobHandler
	Logger  *slog.Logger

	jobs    chan Job
	mu      sync.RWMutex
	closed  bool
	workers sync.WaitGroup
}

func NewWorkerPool(size int, handler JobHandler, logger *slog.Logger) (*WorkerPool, error) {
	if size <= 0 {
		return nil, ErrZeroPoolSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	wp := &WorkerPool{
		Handler: handler,
		Logger:  logger,
		jobs:    make(chan Job, ChannelBufferSize),
	}

	wp.workers.Add(size)
	for id := range size {
		go wp.work(id)
	}

	return wp, nil
}

func (wp *WorkerPool) work(id int) {
	defer wp.workers.Done()

	for job := range wp.jobs {
		wp.Logger.Debug("worker got a job", "worker", id)
		wp.Handler(job)
	}

	wp.Logger.Debug("worker stopped", "worker", id)
}

// Submit queues job. It only blocks while the queue is full.
func (wp *WorkerPool) Submit(job Job) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return ErrPoolClosed
	}

	wp.jobs <- job
	return nil
}

// Shutdown stops accepting jobs, lets the workers drain everything already
// queued and waits for all of them to exit. Calling it again only waits.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()
	if !wp.closed {
		wp.closed = true
		close(wp.jobs)
		wp.Logger.Info("worker pool shutting down")
	}
	wp.mu.Unlock()

	wp.workers.Wait()
}
