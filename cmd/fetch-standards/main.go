package main

import (
	"context"
	"log"
	"standards-fetcher/internal/app"
	"time"
)

func main() {
	fetcherApp := app.InitApp()

	fetcherApp.Run(context.Background())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fetcherApp.StopApp(shutdownCtx); err != nil {
		log.Printf("failed to stop fetcher cleanly: %v", err)
	}
}
