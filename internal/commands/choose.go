package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selekt-cli/selekt/internal/config"
	"github.com/selekt-cli/selekt/internal/prompt"
	"github.com/selekt-cli/selekt/internal/terminal"
)

var (
	chooseLabel   string
	chooseDefault int
	chooseIndex   bool
)

var chooseCmd = &cobra.Command{
	Use:   "choose [option...]",
	Short: "Pick one option with the arrow keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		options, err := gatherOptions(args)
		if err != nil {
			return err
		}

		sess, err := terminal.NewSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		idx, err := prompt.Select(sess, prompt.SelectConfig{
			Label:   chooseLabel,
			Options: options,
			Default: clampIndex(chooseDefault, len(options)),
			Theme:   buildTheme(settings),
		})
		if err != nil {
			return err
		}

		if chooseIndex {
			fmt.Println(idx)
		} else {
			fmt.Println(options[idx])
		}
		return nil
	},
}

func init() {
	chooseCmd.Flags().StringVarP(&chooseLabel, "prompt", "p", "Choose:", "prompt text")
	chooseCmd.Flags().IntVar(&chooseDefault, "default", 0, "initially highlighted index")
	chooseCmd.Flags().BoolVar(&chooseIndex, "index", false, "print the selected index instead of the value")
}
