// Command token mints a bearer token for local testing. The service has no
// login endpoint; tokens are signed with JWT_SECRET from the environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myguide/internal/config"
	"myguide/pkg/utils"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid); a new one is generated when empty")
	role := flag.String("role", utils.RoleTraveller, "role claim, e.g. traveller or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	logger, err := config.NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	userID := uuid.New()
	if *userFlag != "" {
		if userID, err = uuid.Parse(*userFlag); err != nil {
			logger.Fatal("invalid user id", zap.String("user", *userFlag), zap.Error(err))
		}
	}

	token, err := utils.NewJWTManager(cfg.JWTSecret, *ttl).CreateToken(userID, *role)
	if err != nil {
		logger.Fatal("failed to sign token", zap.Error(err))
	}
	fmt.Println(token)
}
