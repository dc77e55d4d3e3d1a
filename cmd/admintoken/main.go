// Package main mints a bearer token for the admin endpoints, signed with the
// server's JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"starseed-server/internal/auth"
	"starseed-server/internal/shared/config"
)

func main() {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	flag.StringVar(&subject, "subject", "admin", "token subject")
	flag.StringVar(&role, "role", auth.RoleAdmin, "token role (admin, viewer)")
	flag.DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_EXPIRATION)")
	flag.Parse()

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	cfg := config.GlobalConfig

	if !cfg.AdminEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set; admin endpoints are disabled")
		os.Exit(1)
	}

	if ttl == 0 {
		ttl = cfg.Auth.TokenExpiration
	}

	token, err := auth.GenerateJWT(cfg.Auth.JWTSecret, subject, role, ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
