package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return writerIsTerminal(w)
}

// interruptibleInput wraps stdin so that cancelling ctx unblocks a pending
// read. Readers that are not files are returned unchanged.
func interruptibleInput(ctx context.Context, in io.Reader) (io.Reader, func()) {
	if _, ok := in.(*os.File); !ok {
		return in, func() {}
	}
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return in, func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			cr.Cancel()
		case <-done:
		}
	}()
	return cr, func() {
		close(done)
		cr.Close()
	}
}

// singleLineError keeps the first line of err, dropping git's stderr dump.
func singleLineError(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return strings.TrimSpace(msg)
}
