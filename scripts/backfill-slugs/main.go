package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"property-listing/config"
	"property-listing/config/postgre"
	propertyRepo "property-listing/internal/property/repository/postgre"
	"property-listing/pkg/log"
)

func main() {
	resync := pflag.Bool("resync", false, "re-derive every slug from its title, dropping pinned slugs")
	dryRun := pflag.Bool("dry-run", false, "report changes without writing them")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	pool, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer postgre.Disconnect(ctx, pool)

	logger.Info(ctx, "Starting slug backfill...")

	st, err := backfill(ctx, propertyRepo.New(pool, logger), logger, *resync, *dryRun)
	if err != nil {
		logger.Fatalf(ctx, "Backfill failed after %d properties: %v", st.Scanned, err)
	}

	logger.Infof(ctx, "Backfill complete! scanned=%d updated=%d conflicts=%d", st.Scanned, st.Updated, st.Conflicts)
}
