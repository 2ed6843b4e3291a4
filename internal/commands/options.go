package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/selekt-cli/selekt/internal/config"
	"github.com/selekt-cli/selekt/internal/prompt"
)

// gatherOptions collects the candidate options from the command arguments,
// or from stdin lines when none are given and stdin is a pipe. The prompt
// session itself falls back to /dev/tty in that case, so piping options
// and staying interactive works at the same time.
func gatherOptions(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no options given (pass them as arguments or pipe them on stdin)")
	}
	return readOptionLines(os.Stdin)
}

// readOptionLines reads one option per line, dropping blank lines.
func readOptionLines(r io.Reader) ([]string, error) {
	var options []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		options = append(options, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options from stdin: %w", err)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no options given (stdin was empty)")
	}
	return options, nil
}

// buildTheme materializes a prompt theme from the settings, honoring the
// NO_COLOR convention.
func buildTheme(s config.Settings) prompt.Theme {
	var t prompt.Theme
	if s.NoColor || os.Getenv("NO_COLOR") != "" {
		t = prompt.PlainTheme()
	} else {
		t = prompt.DefaultTheme()
	}
	if s.Glyphs.Pointer != "" {
		t.Pointer = s.Glyphs.Pointer
	}
	if s.Glyphs.Checked != "" {
		t.Checked = s.Glyphs.Checked
	}
	if s.Glyphs.Unchecked != "" {
		t.Unchecked = s.Glyphs.Unchecked
	}
	if s.Glyphs.Checkmark != "" {
		t.Checkmark = s.Glyphs.Checkmark
	}
	return t
}

// clampIndex forces i into [0, n). The engines treat the default index as
// caller-validated, so the CLI clamps before handing it over.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
