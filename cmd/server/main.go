package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/coursewave/coursewave-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	// Embedded scheduler: run the publish loop alongside the API unless a
	// dedicated scheduler process handles it.
	if os.Getenv("DISABLE_SCHEDULER") == "" {
		a.Start()
	} else {
		a.Log.Info("Embedded scheduler disabled")
	}

	addr := ":" + a.Cfg.Port
	a.Log.Info("Starting server", "addr", addr)
	if err := a.Run(addr); err != nil {
		a.Log.Error("Server exited", "error", err)
		a.Close()
		os.Exit(1)
	}
}
