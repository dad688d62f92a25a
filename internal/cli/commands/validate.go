package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tsep/internal/config"
	"tsep/internal/separator"
	"tsep/internal/ui"
)

// ValidateCommand handles the validate command
type ValidateCommand struct {
	config    *config.Config
	service   *separator.Service
	formatter *ui.Formatter
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(cfg *config.Config, service *separator.Service, formatter *ui.Formatter) *ValidateCommand {
	return &ValidateCommand{
		config:    cfg,
		service:   service,
		formatter: formatter,
	}
}

// Execute runs the command
func (vc *ValidateCommand) Execute(cmd *cobra.Command, args []string) error {
	res, err := vc.service.Resolve()
	if res != nil {
		vc.formatter.PrintResolution(res)
	}
	if err != nil {
		return err
	}

	color.Green("✓ Configuration is valid, %d groups at %s level", vc.config.Groups, vc.config.DepthLevel)
	return nil
}
