package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/saeidalz13/battleship-core/db/sqlc"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	mc "github.com/saeidalz13/battleship-core/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	BattleshipRoute = "GET /battleship"
)

const (
	defaultPort       = "8000"
	readHeaderTimeout = time.Second * 5
	shutdownTimeout   = time.Second * 10
)

type Server struct {
	port    string
	stage   string
	querier sqlc.Querier

	sessionManagerOpts []mc.SessionManagerOption

	SessionManager *mc.BattleshipSessionManager
	GameManager    *mb.BattleshipGameManager

	requestProcessor RequestProcessor
}

type Option func(*Server) error

// NewServer panics on an invalid option; it only runs at start up.
func NewServer(optFuncs ...Option) *Server {
	server := Server{
		port:  defaultPort,
		stage: StageDev,
	}
	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	server.SessionManager = mc.NewBattleshipSessionManager(server.sessionManagerOpts...)
	server.GameManager = mb.NewBattleshipGameManager()
	server.requestProcessor = NewRequestProcessor(server.SessionManager, server.GameManager, server.querier)
	return &server
}

func WithPort(port string) Option {
	return func(s *Server) error {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid port: %s", port)
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

// WithQuerier turns analytics on.
func WithQuerier(q sqlc.Querier) Option {
	return func(s *Server) error {
		if q == nil {
			return errors.New("querier must not be nil")
		}
		s.querier = q
		return nil
	}
}

func WithSessionManagerOptions(opts ...mc.SessionManagerOption) Option {
	return func(s *Server) error {
		s.sessionManagerOpts = append(s.sessionManagerOpts, opts...)
		return nil
	}
}

func (s *Server) Port() string {
	return s.port
}

func (s *Server) Stage() string {
	return s.stage
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(BattleshipRoute, s.requestProcessor)
	return mux
}

// Run serves until ctx is done, then shuts the listener down and logs
// the analytics of the run. Stale sessions are cleaned up in the
// background meanwhile.
func (s *Server) Run(ctx context.Context) error {
	go s.SessionManager.CleanupPeriodically(ctx)

	httpServer := &http.Server{
		Addr:              "0.0.0.0:" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("port", s.port).Str("stage", s.stage).Msg("listening")
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err

	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		// best effort, the error is already logged
		_, _ = s.requestProcessor.ReportAnalytics(shutdownCtx)
		return nil
	}
}
