package commands

import (
	"fmt"

	"github.com/domaos/domain-radar/pkg/rand"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenLength = 32

func tokenExecute(c *cli.Context) error {
	token := rand.String(adminTokenLength)
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	fmt.Printf("token: %s\n", token)
	fmt.Printf("hash:  %s\n", string(hash))
	fmt.Println("Pass the hash via --admin-token-hash (or ADMIN_TOKEN_HASH) and keep the token for API calls.")

	return nil
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:   "token",
		Usage:  "generate an admin token and its bcrypt hash",
		Action: tokenExecute,
	}
}
