package app

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"
)

// Shutdown listens for SIGINT and SIGTERM signals, shuts down
// the server and informs the main goroutine via the done channel
func (a *App) Shutdown(done chan<- struct{}) {

	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// This is a blocking call.
	// If context is done an interruption signal was received.
	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")

	// Stop watching for termination signals. A second signal now
	// goes straight to the OS and kills the process immediately.
	stop()

	// Give the server 5 seconds to finish the requests in flight
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting...")

	// Notify the main goroutine that the shutdown is complete
	done <- struct{}{}
}
