package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Srv *http.Server
	Log *zap.SugaredLogger
}

func NewServer(addr string, handler http.Handler, log *zap.SugaredLogger) (*Server, error) {
	if handler == nil {
		return nil, errors.New("Server needs a handler")
	}
	return &Server{
		Log: log,
		Srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// RunServer serves until ctx is done and then shuts down gracefully.
func (s *Server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.Log.Infof("Server is listening on %s", s.Srv.Addr)
		errCh <- s.Srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return fmt.Errorf("Server is stopped: %w", err)
	case <-ctx.Done():
	}
	s.Log.Infoln("Server is stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.Srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("Problem with server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
