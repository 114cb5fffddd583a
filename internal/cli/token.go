package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func tokenCommand(opts *options) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the API token stored in the system keyring",
		Commands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Store the API token",
				ArgsUsage: "<token>",
				Action: func(ctx context.Context, c *cli.Command) error {
					token := strings.TrimSpace(c.Args().First())
					if token == "" {
						return goerr.New("token is required")
					}
					store, err := opts.keyring()
					if err != nil {
						return err
					}
					if err := store.SetToken(token); err != nil {
						return err
					}
					fmt.Fprintln(c.Root().Writer, "Token guardado")
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "Remove the stored API token",
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := opts.keyring()
					if err != nil {
						return err
					}
					if err := store.DeleteToken(); err != nil {
						return err
					}
					fmt.Fprintln(c.Root().Writer, "Token eliminado")
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Show the stored API token, masked",
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := opts.keyring()
					if err != nil {
						return err
					}
					token, err := store.Token()
					if err != nil {
						return err
					}
					fmt.Fprintln(c.Root().Writer, maskToken(token))
					return nil
				},
			},
		},
	}
}

// keyring opens the token store named by the config
func (o *options) keyring() (tokenStore, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return openTokenStore(cfg.TokenKey)
}

// maskToken keeps the first four characters of a token
func maskToken(token string) string {
	if token == "" {
		return "(sin token)"
	}
	r := []rune(token)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + strings.Repeat("*", len(r)-4)
}
