package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/ui"
)

func exportCommand(opts *options) *cli.Command {
	var (
		format string
		outDir string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Fetch the history once and write it to a spreadsheet (CSV fallback)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Export format: auto, xlsx or csv",
				Value:       string(export.FormatAuto),
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output directory (default: export.dir, then the download directory)",
				Destination: &outDir,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			ctx, closeLog, err := opts.setupLogger(ctx, c, cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()

			if outDir == "" {
				outDir = cfg.ExportDir()
			}

			store := opts.openJournal(ctx)
			if store != nil {
				defer store.Close()
			}
			svc, err := newExporter(cfg, store, f, outDir)
			if err != nil {
				return err
			}

			records, err := fetch(ctx, opts, cfg)
			if err != nil {
				return err
			}

			res, err := svc.Export(ctx, records, time.Now())
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if !res.Written {
				fmt.Fprintln(w, ui.EmptyText)
				return nil
			}
			fmt.Fprintf(w, "Exportados %d registros en %s\n", res.Rows, res.Path)
			if res.Fallback {
				fmt.Fprintln(w, "Excel no disponible, se exportó CSV")
			}
			return nil
		},
	}
}
