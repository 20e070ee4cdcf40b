package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"

	"slangopedia/internal/config"
	"slangopedia/internal/core"
	"slangopedia/internal/db"
	"slangopedia/internal/http/handler"
	"slangopedia/internal/http/handler/middleware"
	"slangopedia/internal/http/payload"
	"slangopedia/internal/http/server"
	"slangopedia/internal/repository"
	"slangopedia/pkg/jwt"
	"slangopedia/pkg/log"
)

func Start() error {
	logger := log.NewZapLogger("slangopedia", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	err = dbConn.MigrateTable(
		&repository.User{},
		&repository.Slang{},
		&repository.SlangLike{},
		&repository.Favorite{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repositories
	userRepo := repository.NewUserRepository(dbConn)
	slangRepo := repository.NewSlangRepository(dbConn)

	// services
	authService := core.NewAuth(logger, userRepo, jwtService, config.JWTExpiration)
	catalogService := core.NewCatalog(logger, slangRepo, userRepo)

	// handlers
	authHlr := handler.NewAuthHandler(logger, payload.DecodeValidator{}, authService)
	slangHlr := handler.NewSlangHandler(logger, payload.DecodeValidator{}, catalogService)

	// middleware
	authMw := middleware.NewAuthMiddleware(logger, jwtService)
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// open routes
	mux.HandleFunc(handler.Register, authHlr.HandleRegister)
	mux.HandleFunc(handler.Login, authHlr.HandleLogin)
	mux.HandleFunc(handler.ListSlangs, slangHlr.HandleList)
	mux.HandleFunc(handler.GetSlang, slangHlr.HandleGet)
	mux.HandleFunc("GET /", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Slangopedia is UP")
	})

	// protected routes
	mux.Handle(handler.Me, authMw.Authenticate(http.HandlerFunc(authHlr.HandleMe)))
	mux.Handle(handler.CreateSlang, authMw.Authenticate(http.HandlerFunc(slangHlr.HandleCreate)))
	mux.Handle(handler.UpdateSlang, authMw.Authenticate(http.HandlerFunc(slangHlr.HandleUpdate)))
	mux.Handle(handler.DeleteSlang, authMw.Authenticate(http.HandlerFunc(slangHlr.HandleDelete)))
	mux.Handle(handler.LikeSlang, authMw.Authenticate(http.HandlerFunc(slangHlr.HandleLike)))
	mux.Handle(handler.FavoriteSlang, authMw.Authenticate(http.HandlerFunc(slangHlr.HandleFavorite)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
