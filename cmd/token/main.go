// Command token prints a bearer token for calling the API in development.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"subscription-items/internal/auth"
	"subscription-items/internal/config"
	"subscription-items/internal/observability"
)

func main() {
	subject := flag.String("sub", "dev-user", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	authenticator := auth.New(cfg.Auth, observability.NewLogger())
	token, err := authenticator.IssueToken(*subject, *ttl)
	if err != nil {
		log.Fatalf("failed to issue token: %s", err)
	}

	fmt.Println(token)
}
