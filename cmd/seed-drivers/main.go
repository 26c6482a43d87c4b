// Command seed-drivers loads the built-in driver roster into the postgres credential table.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Temutjin2k/ubar/config"
	repo "github.com/Temutjin2k/ubar/internal/adapter/postgres"
	"github.com/Temutjin2k/ubar/internal/adapter/static"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/Temutjin2k/ubar/pkg/postgres"
	"github.com/Temutjin2k/ubar/pkg/trm"
)

var configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	log := logger.InitLogger("seed-drivers", logger.LevelInfo)

	dbCfg, err := config.LoadDatabase(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure database", err)
		os.Exit(1)
	}

	db, err := postgres.New(ctx, dbCfg)
	if err != nil {
		log.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repo.EnsureSchema(ctx, db.Pool); err != nil {
		log.Error(ctx, "failed to prepare schema", err)
		os.Exit(1)
	}

	drivers := repo.NewDriverRepo(db.Pool)
	tx := trm.New(db.Pool)
	err = tx.Do(ctx, func(ctx context.Context) error {
		for _, d := range static.AuthorizedDrivers {
			if err := drivers.Upsert(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error(ctx, "failed to seed drivers", err)
		os.Exit(1)
	}

	var n int
	err = tx.DoReadOnly(ctx, func(ctx context.Context) (err error) {
		n, err = drivers.Count(ctx)
		return err
	})
	if err != nil {
		log.Error(ctx, "failed to count drivers", err)
		os.Exit(1)
	}
	log.Info(ctx, "drivers seeded", "upserted", len(static.AuthorizedDrivers), "total", n)
}
