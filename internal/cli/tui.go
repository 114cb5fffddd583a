package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nhath/registros/internal/export"
	"github.com/nhath/registros/internal/ui"
)

func runTUI(ctx context.Context, c *cli.Command, opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	ctx, closeLog, err := opts.setupLogger(ctx, c, cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store := opts.openJournal(ctx)
	if store != nil {
		defer store.Close()
	}

	exporter, err := newExporter(cfg, store, export.FormatAuto, cfg.ExportDir())
	if err != nil {
		return err
	}

	modelOpts := []ui.Option{ui.WithLocation(loc)}
	if store != nil {
		modelOpts = append(modelOpts, ui.WithExportLog(store))
	}
	model := ui.NewModel(ctx, cfg, opts.newClient(ctx, cfg), exporter, modelOpts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return goerr.Wrap(err, "failed to run interactive view")
	}
	return nil
}
