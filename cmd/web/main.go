package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/bookrack/bookrack-go/internal/config"
	"github.com/bookrack/bookrack-go/internal/handler"
	"github.com/bookrack/bookrack-go/internal/middleware"
	"github.com/bookrack/bookrack-go/internal/repository"
	"github.com/bookrack/bookrack-go/internal/service"
	"github.com/bookrack/bookrack-go/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		slog.Error("applying migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	listRepo := repository.NewReadingListRepository(db)

	catalogService := service.NewCatalogService(catalogRepo)
	if err := catalogService.Seed(ctx); err != nil {
		slog.Error("seeding catalog failed", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(userRepo, cfg.SessionSecret, cfg.SessionTTL)
	listService := service.NewReadingListService(listRepo)

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("parsing templates failed", "error", err)
		os.Exit(1)
	}

	authHandler := handler.NewAuthHandler(authService, renderer)
	libraryHandler := handler.NewLibraryHandler(catalogService, listService, renderer)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("public"))))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	r.Get("/signup", authHandler.HandleSignupForm)
	r.Post("/signup", authHandler.HandleSignup)
	r.Get("/login", authHandler.HandleLoginForm)
	r.Post("/login", authHandler.HandleLogin)
	r.Post("/signout", authHandler.HandleSignout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.SessionSecret))
		r.Get("/dashboard", libraryHandler.HandleDashboard)
		r.Post("/select-genre", libraryHandler.HandleSelectGenre)
		r.Post("/add-to-list", libraryHandler.HandleAddToList)
		r.Post("/remove-from-list", libraryHandler.HandleRemoveFromList)
		r.Post("/add-review", libraryHandler.HandleAddReview)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
