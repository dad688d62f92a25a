package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsep/internal/cli"
	"tsep/internal/config"
	"tsep/internal/separator"
	"tsep/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	service   *separator.Service
	formatter *ui.Formatter
	flags     *cli.Flags
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, service *separator.Service, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		service:   service,
		formatter: formatter,
		flags:     &cli.Flags{},
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	result, err := lc.service.Collect(cmd.Context())
	if err != nil {
		return err
	}

	if len(result.Collection.Records) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	lc.formatter.PrintCollection(result.Collection, lc.flags.TestCases)
	return nil
}
