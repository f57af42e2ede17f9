package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/brandonbloom/rn/internal/gitutil"
	"github.com/brandonbloom/rn/internal/repos"
	"github.com/brandonbloom/rn/internal/timefmt"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newListCommand(root *rootOptions) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List repositories under the root",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, long)
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show branch, dirty marker and last commit time")
	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, long bool) error {
	cfg, all, err := loadRepos(opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !long {
		for _, r := range all {
			fmt.Fprintln(out, r.Name)
		}
		return nil
	}

	useColor := colorEnabled(cfg.Color, out)
	now := time.Now()
	rows := make([]listRow, 0, len(all))
	for _, r := range all {
		summary, err := gitutil.Summarize(r.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %v\n", r.Name, singleLineError(err))
			rows = append(rows, listRow{Repo: r})
			continue
		}
		rows = append(rows, listRow{Repo: r, Summary: summary, OK: true})
	}
	printListRows(out, rows, now, useColor)
	return nil
}

type listRow struct {
	Repo    repos.Repo
	Summary gitutil.Summary
	OK      bool
}

type listPalette struct {
	branch func(a ...interface{}) string
	dirty  func(a ...interface{}) string
	age    func(a ...interface{}) string
}

// newListPalette forces styling on: color's global NoColor follows stdout
// detection, which would override --color=always when piped.
func newListPalette() listPalette {
	style := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return listPalette{
		branch: style(color.FgHiBlue),
		dirty:  style(color.FgHiRed, color.Bold),
		age:    style(color.FgHiBlack),
	}
}

func printListRows(out io.Writer, rows []listRow, now time.Time, useColor bool) {
	nameWidth, branchWidth := 0, 0
	for _, row := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(row.Repo.Name))
		branchWidth = max(branchWidth, runewidth.StringWidth(branchCell(row)))
	}
	var p listPalette
	if useColor {
		p = newListPalette()
	}
	for _, row := range rows {
		name := runewidth.FillRight(row.Repo.Name, nameWidth)
		branch := runewidth.FillRight(branchCell(row), branchWidth)
		age := "?"
		if row.OK {
			age = timefmt.Ago(row.Summary.Timestamp, now)
		}
		if useColor {
			if row.Summary.Dirty {
				branch = p.dirty(branch)
			} else {
				branch = p.branch(branch)
			}
			age = p.age(age)
		}
		fmt.Fprintf(out, "%s  %s  %s\n", name, branch, age)
	}
}

func branchCell(row listRow) string {
	if !row.OK {
		return "?"
	}
	if row.Summary.Dirty {
		return row.Summary.Branch + "!"
	}
	return row.Summary.Branch
}
