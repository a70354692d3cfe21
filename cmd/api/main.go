package main

import (
	"context"
	"log"

	"github.com/qa-sandbox/go-demo-user-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("demo user API failed: %v", err)
	}
}
