package gitutil

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Run executes git within dir and returns trimmed stdout.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %v\n%s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// CurrentBranch reports the checked-out branch name, or the short commit
// hash when HEAD is detached.
func CurrentBranch(dir string) (string, error) {
	out, err := Run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	if out != "HEAD" {
		return out, nil
	}
	short, err := Run(dir, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return "(" + short + ")", nil
}

// Dirty reports whether the checkout has uncommitted/staged changes.
func Dirty(dir string) (bool, error) {
	out, err := Run(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// HeadTimestamp returns the committer timestamp of the HEAD commit.
func HeadTimestamp(dir string) (time.Time, error) {
	out, err := Run(dir, "log", "-1", "--format=%cI", "HEAD")
	if err != nil {
		return time.Time{}, err
	}
	return parseCommitTime(out)
}

func parseCommitTime(out string) (time.Time, error) {
	out = strings.TrimSpace(out)
	if out == "" {
		return time.Time{}, errors.New("no commits")
	}
	return time.Parse(time.RFC3339, out)
}

// Summary is what `rn list --long` shows for one checkout.
type Summary struct {
	Branch    string
	Dirty     bool
	Timestamp time.Time
}

// Summarize collects branch, dirtiness and last commit time for dir. A
// repository without commits yields a zero Timestamp rather than an error.
func Summarize(dir string) (Summary, error) {
	var s Summary
	dirty, err := Dirty(dir)
	if err != nil {
		return s, err
	}
	s.Dirty = dirty
	if ts, err := HeadTimestamp(dir); err == nil {
		s.Timestamp = ts
	} else {
		// Unborn branch: rev-parse HEAD fails, symbolic-ref still names it.
		branch, berr := Run(dir, "symbolic-ref", "--short", "HEAD")
		if berr != nil {
			return s, err
		}
		s.Branch = branch
		return s, nil
	}
	branch, err := CurrentBranch(dir)
	if err != nil {
		return s, err
	}
	s.Branch = branch
	return s, nil
}
