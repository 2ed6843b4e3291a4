package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/selekt-cli/selekt/internal/commands"
	"github.com/selekt-cli/selekt/internal/prompt"
)

func main() {
	if err := commands.Execute(); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
