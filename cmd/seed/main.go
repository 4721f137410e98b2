// Command seed provisions an account directly in the configured store. It is the only
// way to create a superadmin.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"blog-api/internal/bootstrap"
	"blog-api/internal/config"
	"blog-api/internal/domain"
	"blog-api/internal/service"
	"blog-api/internal/token"
)

func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	nombre := flag.String("nombre", "", "display name")
	role := flag.String("role", domain.RoleSuperadmin, "member, editor or superadmin")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := bootstrap.OpenStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open stores: %v", err)
	}
	defer stores.Close()

	tokens := token.NewService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	users := service.NewUserService(stores.Users, tokens)

	user, err := users.Provision(ctx, service.RegisterInput{
		Email:       *email,
		Password:    *password,
		PassConfirm: *password,
		Nombre:      *nombre,
		Role:        *role,
	})
	if err != nil {
		logger.WithError(err).Fatal("provision account")
	}
	logger.WithFields(logrus.Fields{
		"uid":   user.ID,
		"email": user.Email,
		"role":  user.Role,
	}).Info("account provisioned")
}
