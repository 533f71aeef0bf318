package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 2 * time.Minute
)

type Service struct {
	addr   string
	router *mux.Router

	mx       sync.Mutex
	server   *http.Server
	listener net.Listener
}

func NewService(addr string) *Service {
	return &Service{
		addr:   addr,
		router: mux.NewRouter(),
	}
}

func (s *Service) Router() *mux.Router {
	return s.router
}

func (s *Service) IsStarted() bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.server != nil
}

// Listen binds the configured address. A bind failure is returned to the caller.
func (s *Service) Listen() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.server != nil {
		return fmt.Errorf("Listen: server already started")
	}

	if s.listener, err = net.Listen("tcp", s.addr); err != nil {
		return fmt.Errorf("Listen: %w", err)
	}

	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return nil
}

func (s *Service) Addr() string {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.listener == nil {
		return s.addr
	}

	return s.listener.Addr().String()
}

// Serve blocks until Stop is called.
func (s *Service) Serve() (err error) {
	s.mx.Lock()
	server, listener := s.server, s.listener
	s.mx.Unlock()

	if server == nil {
		return fmt.Errorf("Serve: server is not listening")
	}

	log.Info().Str("addr", listener.Addr().String()).Msg("Serve: http server started")
	if err = server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("Serve: %w", err)
	}

	return nil
}

func (s *Service) Stop(ctx context.Context) (err error) {
	s.mx.Lock()
	server, listener := s.server, s.listener
	s.mx.Unlock()

	if server == nil {
		return fmt.Errorf("Stop: server already stopped")
	}

	if err = server.Shutdown(ctx); err != nil {
		return fmt.Errorf("Stop: %w", err)
	}
	// served listeners are already closed by Shutdown
	_ = listener.Close()

	s.mx.Lock()
	s.server, s.listener = nil, nil
	s.mx.Unlock()

	return nil
}
