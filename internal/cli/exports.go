package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nhath/registros/internal/timefmt"
)

func exportsCommand(opts *options) *cli.Command {
	var count int64

	return &cli.Command{
		Name:  "exports",
		Usage: "List the most recent exports from the journal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of exports to list",
				Value:       10,
				Destination: &count,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx, closeLog, err := opts.setupLogger(ctx, c, cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()

			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			store := opts.openJournal(ctx)
			if store == nil {
				return goerr.New("export journal is not available")
			}
			defer store.Close()

			entries, err := store.List(ctx, int(count))
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if len(entries) == 0 {
				fmt.Fprintln(w, "No hay exportaciones")
				return nil
			}
			for _, e := range entries {
				format := e.Format
				if e.Fallback {
					format += "*"
				}
				fmt.Fprintf(w, "%-20s %-5s %5d  %s\n", timefmt.Medium(e.ExportedAt.In(loc)), format, e.Rows, e.Path)
			}
			return nil
		},
	}
}
