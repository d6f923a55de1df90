package commands

import (
	"context"
	"fmt"

	"github.com/domaos/domain-radar/pkg/backend"
	"github.com/domaos/domain-radar/pkg/db"
	"github.com/domaos/domain-radar/pkg/registry"
	"github.com/rancher/wrangler/pkg/signals"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type ingestCmd struct{}

func (s *ingestCmd) Execute(c *cli.Context) error {
	ctx := signals.SetupSignalHandler(context.Background())

	log := logrus.WithField("command", "ingest")

	database, err := db.New(ctx, c.String("sql-dialect"), c.String("sql-dsn"), &gorm.Config{
		Logger: db.NewLogger(c.String("log-level")),
	})
	if err != nil {
		return err
	}

	client := registry.NewClient(c.String("doma-endpoint"), c.String("doma-api-key"),
		logrus.WithField("component", "registry"))

	back := backend.NewBackend(database, client, logrus.WithField("component", "backend"), backend.Options{})

	result := back.Ingest(ctx, c.Int("batch-size"), c.Int("max-batches"), c.StringSlice("tlds"))

	log.WithFields(logrus.Fields{
		"totalProcessed": result.TotalProcessed,
		"batches":        result.Batches,
		"skipped":        result.Skipped,
	}).Info("ingestion finished")

	for _, e := range result.Errors {
		log.Warn(e)
	}
	if result.TotalProcessed == 0 && len(result.Errors) > 0 {
		return fmt.Errorf("ingestion made no progress: %s", result.Errors[0])
	}

	return nil
}

func ingestCommand() *cli.Command {
	cmd := ingestCmd{}

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Records per page requested from the registry",
			Value: 100,
		},
		&cli.IntFlag{
			Name:  "max-batches",
			Usage: "Upper bound on pages fetched in this run",
			Value: 10,
		},
		&cli.StringSliceFlag{
			Name:  "tlds",
			Usage: "TLDs to ingest; all supported TLDs when empty",
		},
	}
	flags = append(flags, sqlFlags()...)
	flags = append(flags, registryFlags()...)

	return &cli.Command{
		Name:   "ingest",
		Usage:  "run one bounded ingestion pass against the registry",
		Action: cmd.Execute,
		Flags:  append(flags, GlobalFlags()...),
		Before: Before,
	}
}
