package commands

import (
	"fmt"

	"github.com/domaos/domain-radar/pkg/version"
	"github.com/urfave/cli/v2"
)

func versionExecute(c *cli.Context) error {
	fmt.Printf("%s\n", version.Get())

	return nil
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "print version",
		Action: versionExecute,
	}
}
