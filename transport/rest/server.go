package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	NewGame(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, string, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	Stats(ctx context.Context, difficulty entity.Difficulty) (*entity.Stats, error)
}

type tokenVerifier interface {
	VerifyToken(token, sessionID string) error
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase
	tokens tokenVerifier
	router *chi.Mux
}

func New(logger *slog.Logger, games gameUseCase, tokens tokenVerifier) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		games:  games,
		tokens: tokens,
		router: chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.RealIP)
	server.router.Use(server.logRequests)
	server.router.Use(middleware.Recoverer)
	server.router.Use(middleware.Timeout(10 * time.Second))

	server.router.Get("/ping", pingHandler)

	server.router.Post("/games", server.handleNewGame)
	server.router.Route("/games/{id}", func(r chi.Router) {
		r.Use(server.requireSessionToken)

		r.Get("/", server.handleGetGame)
		r.Post("/turn", server.handleTurn)
		r.Post("/reset", server.handleReset)
	})
	server.router.Get("/stats", server.handleStats)

	server.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return server
}

// Router - the handler with every route mounted.
func (that *Server) Router() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
