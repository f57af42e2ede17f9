package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brandonbloom/rn/internal/gitutil"
	"github.com/brandonbloom/rn/internal/repos"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"RN_ROOT", "RN_COLOR", "RN_MAX_READ_FAULTS", "RN_WRAPPER_ACTIVE", "RN_INSTRUCTION_FILE"} {
		t.Setenv(key, "")
	}
}

func makeRoot(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name, ".git"), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	return root
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestPickPrintsChosenPath(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "web", "api", "infra")

	stdout, stderr, err := execute(t, "2\n", "--root", root)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	if want := filepath.Join(root, "infra") + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "REPO NAVIGATOR") || !strings.Contains(stderr, " 1. api") {
		t.Fatalf("stderr missing list:\n%s", stderr)
	}
}

func TestPickByFilter(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "web", "api", "infra")
	t.Setenv("RN_ROOT", root)

	stdout, _, err := execute(t, "WE\n\n")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := filepath.Join(root, "web") + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestPickCancelled(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "api")

	for _, input := range []string{"q\n", "quit\n", ""} {
		stdout, _, err := execute(t, input, "--root", root)
		if !errors.Is(err, ErrNoSelection) {
			t.Fatalf("input %q: err = %v, want ErrNoSelection", input, err)
		}
		if stdout != "" {
			t.Fatalf("input %q: stdout = %q, want empty", input, stdout)
		}
	}
}

func TestPickNoRepositories(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t)

	_, stderr, err := execute(t, "1\n", "--root", root)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if !strings.Contains(stderr, "No repositories found") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestPickMissingRoot(t *testing.T) {
	isolateEnv(t)
	root := filepath.Join(t.TempDir(), "nope")

	_, _, err := execute(t, "1\n", "--root", root)
	if !errors.Is(err, repos.ErrRootMissing) {
		t.Fatalf("err = %v, want ErrRootMissing", err)
	}
}

func TestPickWithWrapperWritesInstruction(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "api", "web")
	instr := filepath.Join(t.TempDir(), "rn.instr")
	t.Setenv("RN_WRAPPER_ACTIVE", "1")
	t.Setenv("RN_INSTRUCTION_FILE", instr)

	stdout, _, err := execute(t, "web\ny\n", "--root", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "" {
		t.Fatalf("stdout = %q, want empty", stdout)
	}
	data, err := os.ReadFile(instr)
	if err != nil {
		t.Fatalf("read instruction: %v", err)
	}
	if string(data) != filepath.Join(root, "web") {
		t.Fatalf("instruction = %q", data)
	}
}

func TestPickRejectsBadColor(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "api")
	if _, _, err := execute(t, "1\n", "--root", root, "--color", "loud"); err == nil {
		t.Fatal("expected error for invalid --color")
	}
}

func TestListNames(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "web", "api")
	if err := os.MkdirAll(filepath.Join(root, "scratch"), 0o755); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "", "list", "--root", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "api\nweb\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestPrintListRows(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	rows := []listRow{
		{
			Repo:    repos.Repo{Name: "api"},
			Summary: gitutil.Summary{Branch: "main", Timestamp: now.Add(-5 * time.Minute)},
			OK:      true,
		},
		{
			Repo:    repos.Repo{Name: "frontend"},
			Summary: gitutil.Summary{Branch: "feature-x", Dirty: true, Timestamp: now.Add(-3 * time.Hour)},
			OK:      true,
		},
		{Repo: repos.Repo{Name: "broken"}},
	}

	var out bytes.Buffer
	printListRows(&out, rows, now, false)
	want := "" +
		"api       main        5m ago\n" +
		"frontend  feature-x!  3h ago\n" +
		"broken    ?           ?\n"
	if out.String() != want {
		t.Fatalf("rows =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestPrintListRowsColorForced(t *testing.T) {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	rows := []listRow{
		{
			Repo:    repos.Repo{Name: "api"},
			Summary: gitutil.Summary{Branch: "main", Timestamp: now.Add(-5 * time.Minute)},
			OK:      true,
		},
		{
			Repo:    repos.Repo{Name: "web"},
			Summary: gitutil.Summary{Branch: "dev", Dirty: true, Timestamp: now.Add(-3 * time.Hour)},
			OK:      true,
		},
	}

	// A bytes.Buffer is not a terminal, so only an explicit request can
	// turn styling on here.
	var out bytes.Buffer
	printListRows(&out, rows, now, true)
	got := out.String()
	for _, want := range []string{"\x1b[94mmain", "\x1b[91;1mdev!", "\x1b[90m5m ago"} {
		if !strings.Contains(got, want) {
			t.Fatalf("rows missing %q:\n%q", want, got)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	cases := []struct {
		name    string
		mode    string
		noColor string
		term    string
		want    bool
	}{
		{"always", "always", "", "xterm-256color", true},
		{"always beats NO_COLOR", "always", "1", "xterm-256color", true},
		{"always beats dumb terminal", "always", "", "dumb", true},
		{"never", "never", "", "xterm-256color", false},
		{"auto without terminal", "auto", "", "xterm-256color", false},
		{"auto with NO_COLOR", "auto", "1", "xterm-256color", false},
		{"auto with dumb terminal", "auto", "", "dumb", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tc.noColor)
			t.Setenv("TERM", tc.term)
			var out bytes.Buffer
			if got := colorEnabled(tc.mode, &out); got != tc.want {
				t.Fatalf("colorEnabled(%q) = %v, want %v", tc.mode, got, tc.want)
			}
		})
	}
}

func TestDeliverChoice(t *testing.T) {
	all := []repos.Repo{{Name: "api", Path: "/src/api"}, {Name: "web", Path: "/src/web"}}
	cases := []struct {
		name    string
		choice  string
		want    string
		wantErr bool
	}{
		{"listed", "web", "/src/web\n", false},
		{"vanished", "docs", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := deliverChoice(&out, all, tc.choice, true)
			if tc.wantErr {
				if err == nil || !strings.Contains(err.Error(), tc.choice) {
					t.Fatalf("err = %v, want error naming %q", err, tc.choice)
				}
				if out.Len() != 0 {
					t.Fatalf("stdout = %q, want nothing", out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("deliverChoice: %v", err)
			}
			if out.String() != tc.want {
				t.Fatalf("stdout = %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t, "alpha", "alphabet")

	stdout, _, err := execute(t, "", "path", "alpha", "--root", root)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if want := filepath.Join(root, "alpha") + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}

	_, _, err = execute(t, "", "path", "abt", "--root", root)
	if err == nil || !strings.Contains(err.Error(), "did you mean alphabet") {
		t.Fatalf("err = %v, want suggestion", err)
	}
}

func TestActivatePrintsWrapper(t *testing.T) {
	stdout, _, err := execute(t, "", "activate")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"rn() {", "RN_WRAPPER_ACTIVE=1", "builtin cd"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("wrapper missing %q:\n%s", want, stdout)
		}
	}
}

func TestDoctorReportsFailures(t *testing.T) {
	isolateEnv(t)
	root := makeRoot(t)

	_, stderr, err := execute(t, "", "doctor", "--root", root)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	for _, want := range []string{"✗ repositories found", "✗ shell wrapper active"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "repository root exists") {
		t.Fatalf("root check failed unexpectedly:\n%s", stderr)
	}
}

func TestSingleLineError(t *testing.T) {
	err := errors.New("git status --porcelain: exit status 128\nfatal: not a git repository")
	if got := singleLineError(err); got != "git status --porcelain: exit status 128" {
		t.Fatalf("got %q", got)
	}
}
