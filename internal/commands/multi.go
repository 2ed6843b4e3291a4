package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/selekt-cli/selekt/internal/config"
	"github.com/selekt-cli/selekt/internal/prompt"
	"github.com/selekt-cli/selekt/internal/terminal"
)

var (
	multiLabel    string
	multiDefaults []int
	multiIndex    bool
)

var multiCmd = &cobra.Command{
	Use:   "multi [option...]",
	Short: "Toggle any number of options and confirm",
	Long:  "Multi presents a checkbox list: arrows move, Space toggles, Enter confirms.\nSelected values are printed one per line in original list order. Confirming\nwith nothing selected is valid and prints nothing.",
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

		indices, err := prompt.MultiSelect(sess, prompt.MultiSelectConfig{
			Label:     multiLabel,
			Options:   options,
			Defaults:  multiDefaults,
			Separator: settings.Separator,
			Theme:     buildTheme(settings),
		})
		if err != nil {
			return err
		}

		for _, idx := range indices {
			if multiIndex {
				fmt.Println(idx)
			} else {
				fmt.Println(options[idx])
			}
		}
		return nil
	},
}

func init() {
	multiCmd.Flags().StringVarP(&multiLabel, "prompt", "p", "Select:", "prompt text")
	multiCmd.Flags().IntSliceVar(&multiDefaults, "default", nil, "indices pre-selected when the prompt opens")
	multiCmd.Flags().BoolVar(&multiIndex, "index", false, "print selected indices instead of values")
}
