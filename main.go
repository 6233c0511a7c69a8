// @title Mental Health Agent API
// @version 1.0
// @description HTTP front for a Gemini-backed mental health support agent
// @basePath /
// @schemes http

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mindcare/internal/api"
	"mindcare/internal/api/handler"
	"mindcare/internal/config"
	"mindcare/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting mental health agent on port %d", cfg.Port)

	// Initialize the Gemini client. Failure is not fatal: the service
	// runs degraded, the health check reports it, and every execute
	// request fails closed with 503.
	var adviser handler.Adviser
	geminiService, err := service.NewGeminiService(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: Gemini client not initialized, running degraded: %v", err)
	} else {
		adviser = geminiService
		log.Printf("Gemini client ready (model %s)", geminiService.Model())
	}

	// Setup router
	router := api.Router(cfg, adviser)

	// Start server in a goroutine
	addr := fmt.Sprintf(":%d", cfg.Port)
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Mental health agent running on %s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down mental health agent...")
}
