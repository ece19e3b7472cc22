package http

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

var ErrServerClosed = errors.New("http: server closed")

type Config struct {
	Name    string
	Root    string
	Workers int
	Router  Router
	Logger  *slog.Logger
}

// Server answers one request per accepted connection. Connections are
// handed to a worker pool so the accept loop never waits on a slow client.
type Server struct {
	Name   string
	Root   string
	Logger *slog.Logger

	handler Handler
	pool    *WorkerPool

	mu       sync.Mutex
	listener net.Listener
	closed   atomic.Bool
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		Name:    config.Name,
		Root:    config.Root,
		Logger:  logger,
		handler: config.Router.Handler(),
	}

	pool, err := NewWorkerPool(config.Workers, s.ServeJob, logger)
	if err != nil {
		return nil, err
	}
	s.pool = pool

	return s, nil
}

func (s *Server) Serve(listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if s.closed.Load() {
		listener.Close()
		return ErrServerClosed
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			s.Logger.Error("failed to accept connection", "error", err)
			continue
		}

		if err := s.pool.Submit(Job{Conn: conn, Root: s.Root}); err != nil {
			conn.Close()
			return ErrServerClosed
		}
	}
}

// ServeJob handles a single connection end to end and closes it. Every
// failure stays local to the connection.
func (s *Server) ServeJob(job Job) {
	conn := job.Conn
	defer conn.Close()

	id := uuid.NewString()
	logger := s.Logger.With("request_id", id, "remote", conn.RemoteAddr().String())

	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Error("connection handler panic", "panic", recovered)
		}
	}()

	logger.Debug("connection opened")

	err := s.serveConn(job, id, logger)
	switch {
	case err == nil:
		logger.Debug("connection closed")
	case errors.Is(err, ErrPeerClosed):
		logger.Debug("client closed the connection")
	case errors.Is(err, ErrMalformedRequest):
		logger.Warn("ill formed request", "error", err)
	default:
		logger.Error("failed to serve connection", "error", err)
	}
}

func (s *Server) serveConn(job Job, id string, logger *slog.Logger) error {
	req, err := ReadRequest(bufio.NewReaderSize(job.Conn, DefaultReadBufferSize))
	if err != nil {
		return err
	}

	ctx := NewRequestCtx(context.Background(), req, job.Root)
	ctx.ID = id
	ctx.Logger = logger

	if err := s.handler(ctx); err != nil {
		return fmt.Errorf("http: handling %s %s: %w", req.Method, req.Path, err)
	}
	if ctx.Response == nil {
		NotFoundHandler(ctx)
	}

	if _, err := ctx.Response.WriteTo(job.Conn); err != nil {
		return fmt.Errorf("http: writing response: %w", err)
	}

	return nil
}

// Shutdown closes the listener, then waits for the pool to finish every
// queued connection or for ctx to end, whichever comes first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.closed.Store(true)

	s.mu.Lock()
	if s.listener != nil {
		s.listener.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
