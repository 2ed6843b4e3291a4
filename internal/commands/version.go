package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selekt-cli/selekt/internal/terminal"
	"github.com/selekt-cli/selekt/internal/update"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version and check for updates",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("selekt %s\n", Version)
		if res := update.Check(cmd.Context(), "selekt-cli", "selekt", Version); res.NeedsUpdate() {
			terminal.Info(fmt.Sprintf("Update available: %s → %s (%s)", res.Current, res.Latest, res.UpdateURL))
		}
	},
}
