package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarrant/projscope/internal/config"
	"github.com/tarrant/projscope/internal/i18n"
	"github.com/tarrant/projscope/internal/inventory"
	"github.com/tarrant/projscope/internal/logging"
	"github.com/tarrant/projscope/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the project inventory",
	Long: `Browse the project inventory in a full-screen terminal UI.
Use the filter bar to narrow the listing by namespace and project type.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Close()

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("loading text catalog: %w", err)
	}

	client := inventory.New(cfg.Inventory.BaseURL, cfg.Inventory.Timeout())
	logger.Info("starting browser", "inventory", cfg.Inventory.BaseURL)

	model := tui.NewModel(client, catalog, logger, cfg.TUI.MaxResultLines)
	app := tui.New(model)
	if err := app.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
