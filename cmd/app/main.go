package main

import (
	"log"

	"github.com/lexcentre/website/internal/app"
)

func main() {
	if err := app.New().RegisterRoutes().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
