package commands

import (
	"context"

	"github.com/domaos/domain-radar/pkg/db"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func seedTldsExecute(c *cli.Context) error {
	database, err := db.New(context.Background(), c.String("sql-dialect"), c.String("sql-dsn"), &gorm.Config{
		Logger: db.NewLogger(c.String("log-level")),
	})
	if err != nil {
		return err
	}

	inserted, err := database.SeedSupportedTlds(db.DefaultSupportedTlds())
	if err != nil {
		return err
	}

	logrus.Infof("seeded %d supported TLDs", inserted)
	return nil
}

func seedTldsCommand() *cli.Command {
	return &cli.Command{
		Name:   "seed-tlds",
		Usage:  "seed the supported TLD reference table",
		Action: seedTldsExecute,
		Flags:  append(sqlFlags(), GlobalFlags()...),
		Before: Before,
	}
}
