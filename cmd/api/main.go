package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/georgemunganga/productions-api/internal/config"
	"github.com/georgemunganga/productions-api/internal/httpx"
	"github.com/georgemunganga/productions-api/internal/modules/action"
	"github.com/georgemunganga/productions-api/internal/modules/auth"
	"github.com/georgemunganga/productions-api/internal/modules/production"
	"github.com/georgemunganga/productions-api/internal/modules/productiondata"
	"github.com/georgemunganga/productions-api/internal/modules/user"
	"github.com/georgemunganga/productions-api/internal/validate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment")
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := openStores(ctx, cfg.Database)
	cancel()
	if err != nil {
		slog.Error("open storage", "driver", cfg.Database.Driver, "err", err)
		os.Exit(1)
	}
	defer st.close()
	slog.Info("storage ready", "driver", cfg.Database.Driver)

	router := httpx.NewRouter(httpx.NewMetrics())

	// ── Identity ────────────────────────────────────────────
	userService := user.NewService(st.users)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(st.users, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Resources ───────────────────────────────────────────
	router.Group(func(r chi.Router) {
		if cfg.Auth.Required {
			r.Use(auth.RequireForWrites(authService))
		}

		productiondata.NewHandler(productiondata.NewService(st.data)).RegisterRoutes(r)

		action.NewAnnouncementHandler(
			action.NewAnnouncementService(st.announcements, validate.Default),
		).RegisterRoutes(r)
		action.NewArticleHandler(
			action.NewArticleService(st.articles, validate.Default),
		).RegisterRoutes(r)

		productionService := production.NewService(st.productions, st.data, userService, validate.Default, logger)
		production.NewHandler(productionService).RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "auth_required", cfg.Auth.Required)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "err", err)
	}
}
