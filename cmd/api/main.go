package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"akari-backend/cmd"
	"akari-backend/internal/api"
	"akari-backend/internal/database"
	"akari-backend/internal/embeddings"
	"akari-backend/internal/frontend"
	"akari-backend/internal/llm"
	"akari-backend/internal/youtube"
)

type APIConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,notEmpty,required"`
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY,notEmpty,required"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	Provider      string `env:"GENAI_PROVIDER" envDefault:"gemini"`
	Model         string `env:"GENAI_MODEL"`
	APIPort       string `env:"API_PORT" envDefault:"8001"`
}

func newGenerator(ctx context.Context, cfg APIConfig) (llm.Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GENAI_PROVIDER is gemini but GEMINI_API_KEY is not set")
		}
		return llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("GENAI_PROVIDER is openai but OPENAI_API_KEY is not set")
		}
		return llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.Model), nil
	default:
		return nil, errors.New("unknown GENAI_PROVIDER: " + cfg.Provider)
	}
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	generator, err := newGenerator(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create generation client: %v", err)
	}

	videos := youtube.NewClient(cfg.YouTubeAPIKey)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.WriteError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})

	chatService := api.NewChatService(db, generator, videos, embeddings.Placeholder{})
	chatService.AddRoutes(r)

	r.Get("/health", api.RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Handle("/", frontend.Handler())

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on port %s", cfg.APIPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
	}

	// ListenAndServe returns as soon as Shutdown begins; wait for it to
	// finish draining in-flight requests, then drain best-effort turn
	// persistence before exiting.
	<-shutdownDone
	chatService.Wait()

	if closer, ok := generator.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("error closing generation client: %v", err)
		}
	}

	log.Println("Server stopped.")
}
