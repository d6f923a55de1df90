package commands

import (
	"context"

	"github.com/domaos/domain-radar/pkg/apiserver"
	"github.com/domaos/domain-radar/pkg/backend"
	"github.com/domaos/domain-radar/pkg/db"
	"github.com/domaos/domain-radar/pkg/registry"
	"github.com/domaos/domain-radar/pkg/version"
	"github.com/rancher/wrangler/pkg/signals"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type apiServerCommand struct{}

func (s *apiServerCommand) Execute(c *cli.Context) error {
	ctx := signals.SetupSignalHandler(context.Background())

	log := logrus.WithField("command", "api-server")

	log.Infof("version: %v", version.Get())

	database, err := db.New(ctx, c.String("sql-dialect"), c.String("sql-dsn"), &gorm.Config{
		Logger: db.NewLogger(c.String("log-level")),
	})
	if err != nil {
		return err
	}

	if seeded, err := database.SeedSupportedTlds(db.DefaultSupportedTlds()); err != nil {
		return err
	} else if seeded > 0 {
		log.Infof("seeded %d supported TLDs", seeded)
	}

	client := registry.NewClient(c.String("doma-endpoint"), c.String("doma-api-key"),
		logrus.WithField("component", "registry"))

	back := backend.NewBackend(database, client, logrus.WithField("component", "backend"), backend.Options{
		RefreshIntervalSeconds: c.Int64("refresh-interval-seconds"),
		RefreshBatchSize:       c.Int("refresh-batch-size"),
		RefreshMaxBatches:      c.Int("refresh-max-batches"),
	})

	apiServer := apiserver.NewAPIServer(ctx, log, c.Int("port"), c.String("admin-token-hash"))

	return apiServer.Start(back)
}

func serverCommand() *cli.Command {
	cmd := apiServerCommand{}

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Usage:   "Port for the HTTP Server Port",
			EnvVars: []string{"RADAR_PORT", "PORT"},
			Value:   4690,
		},
		&cli.StringFlag{
			Name:    "admin-token-hash",
			Usage:   "bcrypt hash of the token guarding the ingest/refresh routes (see the token command)",
			EnvVars: []string{"RADAR_ADMIN_TOKEN_HASH", "ADMIN_TOKEN_HASH"},
		},
		&cli.Int64Flag{
			Name:    "refresh-interval-seconds",
			Usage:   "How often the refresh daemon re-ingests, 0 to disable",
			EnvVars: []string{"RADAR_REFRESH_INTERVAL_SECONDS"},
			Value:   0,
		},
		&cli.IntFlag{
			Name:    "refresh-batch-size",
			Usage:   "Page size used by the refresh daemon",
			EnvVars: []string{"RADAR_REFRESH_BATCH_SIZE"},
			Value:   100,
		},
		&cli.IntFlag{
			Name:    "refresh-max-batches",
			Usage:   "Page cap per refresh daemon run",
			EnvVars: []string{"RADAR_REFRESH_MAX_BATCHES"},
			Value:   10,
		},
	}
	flags = append(flags, sqlFlags()...)
	flags = append(flags, registryFlags()...)

	return &cli.Command{
		Name:   "api-server",
		Usage:  "domain radar api server",
		Action: cmd.Execute,
		Flags:  append(flags, GlobalFlags()...),
		Before: Before,
	}
}
