package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tsep/internal/cli"
	"tsep/internal/config"
	"tsep/internal/distribution"
	"tsep/internal/logging"
	"tsep/internal/separator"
	"tsep/internal/storage"
	"tsep/internal/strategy"
	"tsep/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Split    *SplitCommand
	List     *ListCommand
	Validate *ValidateCommand
	Show     *ShowCommand

	service *separator.Service
	logger  *zap.Logger
}

// NewCommands creates all commands with dependencies.
// cfg is filled in place once flags are parsed, so dependencies keep the same pointer.
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	resolver := strategy.NewResolver(cfg)
	scheduler := distribution.NewLPTScheduler()
	fileStorage := storage.NewFileStorage(cfg)
	service := separator.NewService(cfg, resolver, scheduler, fileStorage, nil)
	formatter := ui.NewFormatter()
	viewer := ui.NewGroupViewer()

	return &Commands{
		Split:    NewSplitCommand(cfg, service, formatter),
		List:     NewListCommand(cfg, service, formatter),
		Validate: NewValidateCommand(cfg, service, formatter),
		Show:     NewShowCommand(cfg, fileStorage, formatter, viewer),
		service:  service,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to the config file (default "+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(flags.Verbose)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		c.logger = logger
		c.service.SetLogger(logger)
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if c.logger != nil {
			_ = c.logger.Sync()
		}
	}

	// Update config with file, environment and flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		*cfg = *loaded
		return nil
	}

	// Split command
	splitCmd := &cobra.Command{
		Use:     "split",
		Short:   "Split tests into balanced groups",
		Long:    "Collect tests with the configured strategy, distribute them into groups of similar estimated duration and write one manifest per group",
		RunE:    c.Split.Execute,
		PreRunE: loadConfig,
	}
	splitCmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "", "Separating strategy (codeception, method-size)")
	splitCmd.Flags().StringVarP(&flags.Level, "level", "l", "", "Depth level (directory, class, method)")
	splitCmd.Flags().IntVarP(&flags.Groups, "groups", "g", 0, "Number of groups to split into")
	splitCmd.Flags().StringVarP(&flags.ResultPath, "result-path", "r", "", "Directory the group manifests are written to")
	splitCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Hide the report parsing progress bar")
	splitCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the distribution without writing manifests")
	rootCmd.AddCommand(splitCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List collected tests",
		Long:    "Resolve the strategy and list the test files it collects, without distributing them",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "", "Separating strategy (codeception, method-size)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "t", false, "List test cases under each file")
	rootCmd.AddCommand(listCmd)

	// Validate command
	validateCmd := &cobra.Command{
		Use:     "validate",
		Short:   "Validate configuration and strategies",
		Long:    "Check the configuration and report which strategy would be used, including every default strategy tried",
		RunE:    c.Validate.Execute,
		PreRunE: loadConfig,
	}
	validateCmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "", "Separating strategy (codeception, method-size)")
	rootCmd.AddCommand(validateCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Browse the last written groups",
		Long:    "Display the groups summary from the result path in an interactive viewer",
		RunE:    c.Show.Execute,
		PreRunE: loadConfig,
	}
	showCmd.Flags().StringVarP(&flags.ResultPath, "result-path", "r", "", "Directory the group manifests were written to")
	showCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the summary instead of opening the viewer")
	rootCmd.AddCommand(showCmd)

	c.Split.flags = flags
	c.List.flags = flags
	c.Show.flags = flags
}
