package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/humanbelnik/kinoswap/prefform/internal/infra/lookupmock"
)

func main() {
	addr := getEnv("MOCK_LOOKUP_ADDR", ":9090")

	titles := lookupmock.DefaultTitles
	if raw := os.Getenv("MOCK_LOOKUP_TITLES"); raw != "" {
		titles = nil
		for _, t := range strings.Split(raw, ";") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				titles = append(titles, trimmed)
			}
		}
	}

	server := lookupmock.NewMockLookupServer(addr, titles)

	go func() {
		if err := server.Start(); err != nil {
			log.Printf("Mock lookup server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down mock lookup server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Stop(ctx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
