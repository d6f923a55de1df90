package commands

import (
	"github.com/urfave/cli/v2"
)

func GetCommands() []*cli.Command {
	return []*cli.Command{
		serverCommand(),
		ingestCommand(),
		seedTldsCommand(),
		tokenCommand(),
		versionCommand(),
	}
}

func sqlFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "sql-dialect",
			Usage:   "The type of sql to use, sqlite or mysql",
			EnvVars: []string{"RADAR_SQL_DIALECT", "SQL_DIALECT"},
			Value:   "sqlite",
		},
		&cli.StringFlag{
			Name:    "sql-dsn",
			Usage:   "The DSN to use to connect to",
			EnvVars: []string{"RADAR_SQL_DSN", "SQL_DSN"},
			Value:   "file:radar.sqlite",
		},
	}
}

func registryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "doma-endpoint",
			Usage:   "Doma subgraph GraphQL endpoint",
			EnvVars: []string{"DOMA_GRAPHQL_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:    "doma-api-key",
			Usage:   "API key for the Doma subgraph",
			EnvVars: []string{"DOMA_API_KEY"},
		},
	}
}
