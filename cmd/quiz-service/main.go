package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"quizhub/internal/auth"
	"quizhub/internal/config"
	"quizhub/internal/fixtures"
	"quizhub/internal/gateway"
	"quizhub/internal/httpapi"
	"quizhub/internal/quiz"
	"quizhub/internal/store/memory"
	"quizhub/internal/store/sqlite"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	quizzes, attempts, users, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer closeStore()

	service := gateway.NewService(quizzes, attempts, users,
		auth.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.TokenTTL()),
		gateway.Options{
			Latency:   cfg.Latency(),
			DemoLogin: cfg.Gateway.DemoLogin,
		})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           httpapi.NewRouter(service),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-service listening on %s (store=%s, latency=%s)",
		cfg.Server.Addr, cfg.Store.Driver, cfg.Latency())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func openStore(cfg *config.Config) (quiz.QuizRepository, quiz.AttemptRepository, quiz.UserRepository, func(), error) {
	switch cfg.Store.Driver {
	case "sqlite":
		store, err := sqlite.NewStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if err := store.Seed(context.Background(), fixtures.Quizzes(), fixtures.Questions(), fixtures.Users(), fixtures.Attempts()); err != nil {
			store.Close()
			return nil, nil, nil, nil, err
		}
		return store, store, store, func() { _ = store.Close() }, nil
	default:
		store := memory.NewStore()
		store.Seed(fixtures.Quizzes(), fixtures.Questions(), fixtures.Users(), fixtures.Attempts())
		return store, store, store, func() {}, nil
	}
}
