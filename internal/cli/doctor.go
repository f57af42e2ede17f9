package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/brandonbloom/rn/internal/config"
	"github.com/brandonbloom/rn/internal/repos"
	"github.com/brandonbloom/rn/internal/shellbridge"
	"github.com/spf13/cobra"
)

func newDoctorCommand(root *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose rn prerequisites and environment issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, root, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorContext struct {
	Options *rootOptions
	Config  config.Config
}

type doctorCheck struct {
	Name string
	Fn   func(*doctorContext) error
}

func runDoctor(cmd *cobra.Command, opts *rootOptions, verbose bool) error {
	ctx := &doctorContext{Options: opts}
	checks := []doctorCheck{
		{Name: "configuration valid", Fn: func(c *doctorContext) error {
			cfg, err := loadConfig(c.Options)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		}},
		{Name: "repository root exists", Fn: checkRoot},
		{Name: "repositories found", Fn: checkRepos},
		{Name: "git installed", Fn: requireOnPath("git")},
		{Name: "shell wrapper active", Fn: func(*doctorContext) error {
			if !shellbridge.Active() {
				return shellbridge.ErrWrapperMissing
			}
			return nil
		}},
	}

	var failures []string
	for _, check := range checks {
		err := check.Fn(ctx)
		if err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}

func requireOnPath(binary string) func(*doctorContext) error {
	return func(*doctorContext) error {
		if _, err := exec.LookPath(binary); err != nil {
			return fmt.Errorf("%s not found on PATH", binary)
		}
		return nil
	}
}

func checkRoot(ctx *doctorContext) error {
	if ctx.Config.Root == "" {
		return errors.New("configuration not loaded")
	}
	if !repos.RootExists(ctx.Config.Root) {
		return fmt.Errorf("%s does not exist", ctx.Config.Root)
	}
	return nil
}

func checkRepos(ctx *doctorContext) error {
	if !repos.RootExists(ctx.Config.Root) {
		return errors.New("repository root missing")
	}
	all, err := repos.List(ctx.Config.Root)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return fmt.Errorf("no git checkouts directly under %s", ctx.Config.Root)
	}
	return nil
}
