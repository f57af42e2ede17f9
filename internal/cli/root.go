package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandonbloom/rn/internal/version"
	"github.com/spf13/cobra"
)

// ErrNoSelection reports that the user left the picker without choosing.
// main turns it into a bare non-zero exit status.
var ErrNoSelection = errors.New("no repository selected")

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

type rootOptions struct {
	root  string
	color string
	print bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "rn",
		Short: "Pick a local repository and jump into it",
		Long: `rn lists the git checkouts under your repository root, lets you pick one
by number or partial name, and hands its path to your shell.

Add eval "$(rn activate)" to your shell rc so that rn can change directory,
or use cd "$(rn)" without the wrapper.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.root, "root", "", "directory containing repositories (default $RN_ROOT or ~/Documents/GitHub)")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "color output: auto, always, or never")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "print the selected path instead of asking the shell wrapper to cd")

	cmd.AddCommand(
		newListCommand(opts),
		newPathCommand(opts),
		newActivateCommand(),
		newDoctorCommand(opts),
		newVersionCommand(),
	)

	return cmd
}
