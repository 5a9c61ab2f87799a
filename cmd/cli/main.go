package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"property-listing/config"
	"property-listing/config/postgre"
	"property-listing/internal/migration"
	propertyRepo "property-listing/internal/property/repository/postgre"
	propertyUC "property-listing/internal/property/usecase"
	userRepo "property-listing/internal/user/repository/postgre"
	userUC "property-listing/internal/user/usecase"
	"property-listing/pkg/log"
	"property-listing/pkg/scope"
	"property-listing/pkg/validation"
)

const usage = `Usage: cli <command> [flags]

Commands:
  create-user      --email <email> --password <password> [--role user]
  create-property  --title <title> --price <price> --owner-email <email> [--description <text>]
  seed             load demo owner and properties
  migrate          apply the database schema`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	pool, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		fmt.Println("Failed to connect to Postgres: ", err)
		os.Exit(1)
	}
	defer postgre.Disconnect(ctx, pool)

	if cmd == "migrate" {
		if err := migration.Up(ctx, pool, logger); err != nil {
			fail(err)
		}
		fmt.Println("Schema is up to date.")
		return
	}

	scopeManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		fail(err)
	}

	users := userUC.New(userRepo.New(pool, logger), scopeManager, logger)
	a := app{
		users:      users,
		properties: propertyUC.New(logger, propertyRepo.New(pool, logger), users, nil, propertyUC.Options{}),
		out:        os.Stdout,
	}

	switch cmd {
	case "create-user":
		err = a.createUser(ctx, args)
	case "create-property":
		err = a.createProperty(ctx, args)
	case "seed":
		err = a.seed(ctx)
	default:
		fmt.Println(usage)
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

// fail prints err, one line per validation message, and exits non-zero.
func fail(err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Invalid input:")
		fmt.Fprintln(os.Stderr, "  "+strings.Join(verr.Messages, "\n  "))
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}
