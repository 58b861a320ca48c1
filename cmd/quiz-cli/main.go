package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quizhub/internal/auth"
	"quizhub/internal/cli"
	"quizhub/internal/fixtures"
	"quizhub/internal/gateway"
	"quizhub/internal/store/memory"
)

func main() {
	userID := flag.String("user", "u1", "fixture user taking the quizzes")
	latency := flag.Duration("latency", 0, "artificial gateway delay")
	flag.Parse()

	store := memory.NewStore()
	store.Seed(fixtures.Quizzes(), fixtures.Questions(), fixtures.Users(), fixtures.Attempts())

	service := gateway.NewService(store, store, store,
		auth.NewTokenIssuer("quiz-cli", time.Hour),
		gateway.Options{Latency: *latency})

	if err := cli.Run(context.Background(), service, *userID, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
