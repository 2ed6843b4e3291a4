package commands

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selekt-cli/selekt/internal/config"
	"github.com/selekt-cli/selekt/internal/prompt"
	"github.com/selekt-cli/selekt/internal/terminal"
)

var (
	filterLabel      string
	filterExec       string
	filterMatch      string
	filterMinQuery   int
	filterMaxResults int
	filterIndex      bool
)

var filterCmd = &cobra.Command{
	Use:   "filter [option...]",
	Short: "Search options by query, then pick a match",
	Long: `Filter reads a query, fetches matching options and lets you pick one.
Options come from arguments or stdin (case-insensitive substring match), or
from a provider command given with --exec, where {} is replaced by the query
and each output line becomes a result. Inside the result list, r starts a
new search and q cancels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}
		if filterMinQuery == 0 {
			filterMinQuery = settings.MinQuery
		}
		if filterMaxResults == 0 {
			filterMaxResults = settings.MaxResults
		}

		var src prompt.Source
		if filterExec != "" {
			src = execSource(filterExec)
		} else {
			options, err := gatherOptions(args)
			if err != nil {
				return err
			}
			src = prompt.Static{Options: options}
		}

		validate, err := matchValidator(filterMatch)
		if err != nil {
			return err
		}

		sess, err := terminal.NewSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		res, err := prompt.Search(cmd.Context(), sess, prompt.SearchConfig{
			Label:      filterLabel,
			Source:     src,
			Validate:   validate,
			MinQuery:   filterMinQuery,
			MaxResults: filterMaxResults,
			Theme:      buildTheme(settings),
		})
		if err != nil {
			return err
		}

		if filterIndex {
			fmt.Println(res.Index)
		} else {
			fmt.Println(res.Value)
		}
		return nil
	},
}

// execSource turns a shell command template into a dynamic source: {} is
// replaced by the query and each non-empty output line is one result.
func execSource(template string) prompt.Source {
	return prompt.Dynamic(func(ctx context.Context, query string) ([]string, error) {
		cmdline := strings.ReplaceAll(template, "{}", query)
		out, err := exec.CommandContext(ctx, "sh", "-c", cmdline).Output()
		if err != nil {
			return nil, fmt.Errorf("provider command failed: %w", err)
		}
		var results []string
		for _, line := range strings.Split(string(out), "\n") {
			if line = strings.TrimRight(line, "\r"); strings.TrimSpace(line) != "" {
				results = append(results, line)
			}
		}
		return results, nil
	})
}

// matchValidator builds a validator that rejects values not matching the
// given regular expression. An empty pattern means no validation.
func matchValidator(pattern string) (func(string) error, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid --match pattern: %w", err)
	}
	return func(value string) error {
		if !re.MatchString(value) {
			return &prompt.ValidationError{Message: fmt.Sprintf("%q does not match %s", value, pattern)}
		}
		return nil
	}, nil
}

func init() {
	filterCmd.Flags().StringVarP(&filterLabel, "prompt", "p", "Search:", "prompt text")
	filterCmd.Flags().StringVar(&filterExec, "exec", "", "provider command; {} is replaced by the query")
	filterCmd.Flags().StringVar(&filterMatch, "match", "", "regexp a committed value must match")
	filterCmd.Flags().IntVar(&filterMinQuery, "min-query", 0, "shortest query that triggers a fetch")
	filterCmd.Flags().IntVar(&filterMaxResults, "max-results", 0, "cap on the result list (0 = unlimited)")
	filterCmd.Flags().BoolVar(&filterIndex, "index", false, "print the result-list index instead of the value")
}
