package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nhath/registros/internal/config"
	"github.com/nhath/registros/internal/history"
	"github.com/nhath/registros/internal/ui"
)

func listCommand(opts *options) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the activity history once",
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

			records, err := fetch(ctx, opts, cfg)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if len(records) == 0 {
				fmt.Fprintln(w, ui.EmptyText)
				return nil
			}

			now := time.Now()
			for _, r := range records {
				v := ui.NewRowView(r, now, loc)
				fmt.Fprintf(w, "%-20s %s %s\n", v.When, v.Icon, v.Line())
			}
			return nil
		},
	}
}

// fetch loads the history once, reporting failures with the user message
func fetch(ctx context.Context, opts *options, cfg *config.Config) ([]history.Record, error) {
	records, err := opts.newClient(ctx, cfg).Fetch(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, history.UserMessage)
	}
	return records, nil
}
