// Package shellbridge hands a chosen directory back to the invoking shell.
package shellbridge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	envWrapper         = "RN_WRAPPER_ACTIVE"
	envInstructionFile = "RN_INSTRUCTION_FILE"
)

var (
	// ErrWrapperMissing indicates the shell function wrapper is not active.
	ErrWrapperMissing = errors.New("shell wrapper missing; add `eval \"$(rn activate)\"` to your shell rc")
)

// Active reports whether the shell wrapper marked itself as active.
func Active() bool {
	return os.Getenv(envWrapper) == "1" && InstructionFile() != ""
}

// InstructionFile returns the path provided by the wrapper for directives.
func InstructionFile() string {
	return os.Getenv(envInstructionFile)
}

// ChangeDirectory requests that the wrapper cd into the provided path.
func ChangeDirectory(path string) error {
	if !Active() {
		return ErrWrapperMissing
	}

	file := InstructionFile()
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}

	return os.WriteFile(file, []byte(path), 0o644)
}

// Deliver sends path to the wrapper when it is active, and otherwise prints
// it on stdout for `cd "$(rn)"`. printOnly forces the stdout form.
func Deliver(stdout io.Writer, path string, printOnly bool) error {
	if !printOnly {
		err := ChangeDirectory(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrWrapperMissing) {
			return fmt.Errorf("write shell instruction: %w", err)
		}
	}
	_, err := fmt.Fprintln(stdout, path)
	return err
}
