// Command admintoken prints a signed admin access token for the operator endpoints.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/venuehub/venuehub-api/internal/config"
	"github.com/venuehub/venuehub-api/internal/pkg/jwt"
	"github.com/venuehub/venuehub-api/internal/pkg/logger"
)

func main() {
	subject := flag.String("subject", "operator", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_ACCESS_TTL)")
	flag.Parse()

	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	lifetime := cfg.JWTAccessTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := jwt.NewService(cfg.JWTSecret, lifetime).GenerateAccessToken(*subject, jwt.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sign token")
	}

	fmt.Fprintln(os.Stdout, token)
}
