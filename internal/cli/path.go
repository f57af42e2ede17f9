package cli

import (
	"fmt"
	"strings"

	"github.com/brandonbloom/rn/internal/repos"
	"github.com/brandonbloom/rn/internal/selector"
	"github.com/spf13/cobra"
)

func newPathCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <name>",
		Short: "Print the path of the repository with exactly this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, root, args[0])
		},
	}
}

func runPath(cmd *cobra.Command, opts *rootOptions, name string) error {
	_, all, err := loadRepos(opts)
	if err != nil {
		return err
	}
	repo, ok := repos.Find(all, name)
	if !ok {
		if near := selector.Suggest(repos.Names(all), name, 3); len(near) > 0 {
			return fmt.Errorf("no repository named %q (did you mean %s?)", name, strings.Join(near, ", "))
		}
		return fmt.Errorf("no repository named %q", name)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), repo.Path)
	return err
}
