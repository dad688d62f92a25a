package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsep/internal/cli"
	"tsep/internal/config"
	"tsep/internal/separator"
	"tsep/internal/ui"
)

// SplitCommand handles the split command
type SplitCommand struct {
	config    *config.Config
	service   *separator.Service
	formatter *ui.Formatter
	flags     *cli.Flags
}

// NewSplitCommand creates a new SplitCommand
func NewSplitCommand(cfg *config.Config, service *separator.Service, formatter *ui.Formatter) *SplitCommand {
	return &SplitCommand{
		config:    cfg,
		service:   service,
		formatter: formatter,
		flags:     &cli.Flags{},
	}
}

// Execute runs the command
func (sc *SplitCommand) Execute(cmd *cobra.Command, args []string) error {
	if !sc.config.Flags.NoProgress {
		sc.service.SetProgress(ui.NewProgressBar())
	}

	run := sc.service.Run
	if sc.flags.DryRun {
		run = sc.service.Plan
	}
	result, err := run(cmd.Context())
	if err != nil {
		return err
	}

	if result.Resolution.FellBack() {
		color.Yellow("⚠ Strategy %s is invalid, using default strategy %s", result.Resolution.Primary, result.Resolution.Active)
	}
	sc.formatter.PrintSummary(result.Manifest)

	if sc.flags.DryRun {
		color.Yellow("Dry run, no manifests written")
		return nil
	}
	color.Green("✓ %d group manifests written to %s", len(result.Manifest.Groups), sc.config.ResultPath)
	return nil
}
