package cli

import (
	"fmt"
	"io"

	"github.com/brandonbloom/rn/internal/repos"
	"github.com/brandonbloom/rn/internal/selector"
	"github.com/brandonbloom/rn/internal/shellbridge"
	"github.com/spf13/cobra"
)

func runPick(cmd *cobra.Command, opts *rootOptions) error {
	cfg, all, err := loadRepos(opts)
	if err != nil {
		return err
	}

	in, closeInput := interruptibleInput(cmd.Context(), cmd.InOrStdin())
	defer closeInput()

	// Prompts go to stderr so stdout carries only the chosen path.
	errOut := cmd.ErrOrStderr()
	sel := selector.New(selector.Options{
		Out:           errOut,
		Color:         colorEnabled(cfg.Color, errOut),
		Width:         terminalWidth(errOut),
		Title:         "REPO NAVIGATOR",
		Noun:          "repositories",
		MaxReadFaults: cfg.MaxReadFaults,
	})
	outcome := sel.Select(cmd.Context(), repos.Names(all), in)
	if !outcome.Chosen {
		return ErrNoSelection
	}

	return deliverChoice(cmd.OutOrStdout(), all, outcome.Name, opts.print)
}

// deliverChoice hands the chosen repository's path to the shell.
func deliverChoice(stdout io.Writer, all []repos.Repo, name string, printOnly bool) error {
	repo, ok := repos.Find(all, name)
	if !ok {
		return fmt.Errorf("selected repository %q is not in the listing", name)
	}
	return shellbridge.Deliver(stdout, repo.Path, printOnly)
}
