// Package cli is the command line entry point. Without a subcommand it opens
// the interactive history view.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := newRootCommand()
	cmd.Writer = os.Stdout
	cmd.ErrWriter = os.Stderr

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}

func newRootCommand() *cli.Command {
	var opts options

	return &cli.Command{
		Name:  "registros",
		Usage: "Browse and export the activity history of the registros API",
		Flags: globalFlags(&opts),
		Commands: []*cli.Command{
			listCommand(&opts),
			exportCommand(&opts),
			tokenCommand(&opts),
			exportsCommand(&opts),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runTUI(ctx, c, &opts)
		},
	}
}
