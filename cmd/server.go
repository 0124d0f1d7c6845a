package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/config"
	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"
	"taskboard/internal/http/server"
	"taskboard/internal/repository"
	"taskboard/pkg/jwt"
	"taskboard/pkg/log"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		logger := log.NewZapLogger("taskboard", log.ParseLevel("info"))
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("taskboard", log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	if config.JWTSecret == "" {
		logger.Warnw("JWT_SECRET is not set, login and protected routes will fail")
	}

	dbConn, err := db.NewGormDB(config.DBConnectionURL, db.ParseLogLevel(config.DBLogLevel))
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	// repository
	repo := repository.NewBoardRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// board
	board := core.NewBoard(logger, repo, jwtService, config.TokenTTL)

	// handlers
	authHlr := handler.NewAuthHandler(logger, payload.Decoder{}, board)
	boardHlr := handler.NewBoardHandler(logger, payload.Decoder{}, board)

	hdlr := NewRouter(logger, config.AllowedOrigins(), authHlr, boardHlr, middleware.NewAuthMiddleware(logger, board))

	srv := server.NewHTTP(logger, hdlr, config.Port, config.RequestTimeout, config.ShutdownTimeout)
	return run(logger, srv)
}

// NewRouter registers every route and wraps the mux with CORS, access logging
// and request ids. Task writes go through the auth gate.
func NewRouter(logger *zap.SugaredLogger, origins []string, authHlr *handler.AuthHandler, boardHlr *handler.BoardHandler, gate *middleware.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, authHlr.HandleRegister)
	mux.HandleFunc(handler.Login, authHlr.HandleLogin)

	mux.HandleFunc(handler.GetDashboard, boardHlr.HandleDashboard)
	mux.HandleFunc(handler.GetTasks, boardHlr.HandleGetTasks)
	mux.HandleFunc(handler.GetEmployees, boardHlr.HandleGetEmployees)
	mux.HandleFunc(handler.GetEmployeeTasks, boardHlr.HandleGetEmployeeTasks)
	mux.HandleFunc(handler.Seed, boardHlr.HandleSeed)
	mux.HandleFunc(handler.Health, boardHlr.HandleHealth)

	mux.Handle(handler.CreateTask, gate.AuthorizeFunc(boardHlr.HandleCreateTask))
	mux.Handle(handler.UpdateTask, gate.AuthorizeFunc(boardHlr.HandleUpdateTask))
	mux.Handle(handler.DeleteTask, gate.AuthorizeFunc(boardHlr.HandleDeleteTask))

	hdlr := corsPolicy(origins).Handler(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	return middleware.NewRequestIDMiddleware().RequestID(hdlr)
}

func corsPolicy(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutdown signal received", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
