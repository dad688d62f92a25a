package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tsep/internal/cli"
	"tsep/internal/config"
	"tsep/internal/storage"
	"tsep/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
	flags     *cli.Flags
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter, viewer ui.Viewer) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		flags:     &cli.Flags{},
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := sc.storage.Load()
	if err != nil {
		return fmt.Errorf("no groups found in %s, run split first: %w", sc.config.ResultPath, err)
	}

	if sc.flags.Plain {
		sc.formatter.PrintSummary(manifest)
		return nil
	}
	return sc.viewer.View(manifest)
}
