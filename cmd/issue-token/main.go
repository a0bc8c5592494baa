// Command issue-token prints an access token for an existing user.
//
//	go run ./cmd/issue-token -email ana@example.com
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"bustrip-backend/internal/auth"
	"bustrip-backend/internal/config"
	"bustrip-backend/internal/database"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	email := flag.String("email", "", "email of the user to issue a token for")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_EXPIRY_MINUTES")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel, os.Stderr)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: true})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	user, err := repository.NewUserRepository(db).GetByEmail(strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		logrus.WithError(err).Fatalf("User %s not found", *email)
	}

	expiry := time.Duration(cfg.JWTExpiryMinutes) * time.Minute
	if *ttl > 0 {
		expiry = *ttl
	}

	token, err := auth.NewTokenService(cfg.JWTSecret, expiry).Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		logrus.Fatal("Failed to issue token:", err)
	}
	fmt.Println(token)
}
