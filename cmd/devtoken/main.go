// Command devtoken prints a bearer token signed with JWT_SECRET for local testing.
//
//	devtoken -user user-1 -email owner@example.com -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"eventcomposer/config"
	"eventcomposer/internal/adapters/auth"
)

func main() {
	userID := flag.String("user", "", "user id placed in the token subject")
	mail := flag.String("email", "", "email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := config.NewLogger()
	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	token, err := auth.NewJWT(cfg.JWTSecret).Issue(*userID, *mail, *ttl)
	if err != nil {
		logger.Error("issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
