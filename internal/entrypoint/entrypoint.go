package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cnlearn/cnlearn/internal/auth"
	"github.com/cnlearn/cnlearn/internal/config"
	"github.com/cnlearn/cnlearn/internal/database"
	"github.com/cnlearn/cnlearn/internal/database/users"
	"github.com/cnlearn/cnlearn/internal/database/vocabulary"
	http_controllers "github.com/cnlearn/cnlearn/internal/http"
	"github.com/cnlearn/cnlearn/internal/search"
	"github.com/cnlearn/cnlearn/internal/segmenter"
)

// Run wires the application together and serves HTTP until interrupted.
func Run(cfg *config.Config, version string) {
	if cfg.Auth.SecretKey == "" {
		logrus.Fatal("SECRET_KEY is not set; refusing to start without a token signing key")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Error("failed to close database")
		}
	}()

	// Dictionary loading takes a moment; do it once here, before serving.
	var seg *segmenter.Segmenter
	if cfg.Dictionary.SegmenterDictPath != "" {
		seg, err = segmenter.New(cfg.Dictionary.SegmenterDictPath)
	} else {
		seg, err = segmenter.New()
	}
	if err != nil {
		logrus.WithError(err).Fatal("failed to load segmenter dictionary")
	}

	vocabularyRepo := vocabulary.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	searchService := search.NewService(vocabularyRepo, seg)
	authService := auth.NewService(userRepo, cfg.Auth)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		AuthService:   authService,
		SearchService: searchService,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		logrus.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"version": version,
		}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exited")
}
