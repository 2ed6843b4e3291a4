package commands

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "selekt",
	Short:   "Interactive selection prompts for the terminal",
	Long:    "Selekt presents single-select, multi-select and search prompts on a TTY,\nreading candidate options from arguments or stdin and printing the committed\nchoice to stdout so it composes with shell pipelines.",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(chooseCmd)
	rootCmd.AddCommand(multiCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(versionCmd)
}
