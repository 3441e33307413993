package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/seabattle/db/sqlc"
	mb "github.com/saeidalz13/seabattle/models/battleship"
	mc "github.com/saeidalz13/seabattle/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	shutdownTimeout = time.Second * 10
)

type Server struct {
	port           int
	stage          string
	analytics      *sqlc.AnalyticsManager
	sessionManager *mc.BattleshipSessionManager
	gameManager    *mb.BattleshipGameManager
}

type Option func(*Server) error

func NewServer(gameManager *mb.BattleshipGameManager, optFuncs ...Option) (*Server, error) {
	server := Server{
		port:           8000,
		stage:          StageDev,
		sessionManager: mc.NewBattleshipSessionManager(),
		gameManager:    gameManager,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			return nil, err
		}
	}

	return &server, nil
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func WithAnalytics(analytics *sqlc.AnalyticsManager) Option {
	return func(s *Server) error {
		s.analytics = analytics
		return nil
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /battleship", NewRequestProcessor(s.sessionManager, s.gameManager, s.analytics))
	return mux
}

// ListenAndServe blocks until ctx is done or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler: s.Handler(),
	}

	go s.sessionManager.CleanupPeriodically(ctx)

	errChan := make(chan error, 1)
	go func() {
		log.Info("listening", "port", s.port, "stage", s.stage)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
