// Package cli wires the listo command tree.
package cli

import (
	"github.com/spf13/cobra"

	"listo/internal/config"
	"listo/internal/tui"
	"listo/internal/ui"
)

type rootFlags struct {
	dir   string
	theme string
}

// NewRootCmd builds the listo command. With no subcommand it opens the
// interactive TUI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "listo",
		Short:         "Manage persistent checklists from the terminal",
		Long:          "listo keeps named checklists in local storage: create lists, add and toggle items, and export everything to a portable JSON backup.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if flags.dir != "" {
				loaded.Dir = flags.dir
			}
			if flags.theme != "" {
				loaded.Theme = flags.theme
			}
			ui.SetTheme(loaded.Theme)
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(cfg)
			if err != nil {
				return err
			}
			defer app.Close()
			return tui.Run(app.store)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dir, "dir", "", "Data directory (default ~/.local/share/listo, or $LISTO_DIR)")
	pf.StringVar(&flags.theme, "theme", "", "Color theme: classic, neon, or mono")

	root.AddCommand(
		newLsCmd(&cfg),
		newAddCmd(&cfg),
		newRenameCmd(&cfg),
		newRmCmd(&cfg),
		newItemsCmd(&cfg),
		newItemCmd(&cfg),
		newExportCmd(&cfg),
		newImportCmd(&cfg),
	)
	return root
}
