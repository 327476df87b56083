// Package launcher starts external programs on behalf of the shell. It
// owns the whole resolution pipeline for one command: search-path
// split, executable lookup, argument-vector construction, process
// creation and the synchronous wait.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"

	"minsh/internal/argv"
	"minsh/internal/pathres"
)

// ErrNotFound reports that no search-path directory held the command.
var ErrNotFound = errors.New("command not found")

// Launcher resolves and runs external commands. Fs is the filesystem
// probed during resolution, Getenv supplies environment values, PathVar
// names the search-path variable and Stderr receives user diagnostics.
type Launcher struct {
	Fs      afero.Fs
	Getenv  func(string) string
	PathVar string
	Stderr  io.Writer
}

// New returns a Launcher bound to the real filesystem, the process
// environment and standard error.
func New(pathVar string) *Launcher {
	return &Launcher{
		Fs:      afero.NewOsFs(),
		Getenv:  os.Getenv,
		PathVar: pathVar,
		Stderr:  os.Stderr,
	}
}

// Run resolves tokens[0] through the search path and executes it with
// the remaining tokens, blocking until the child exits. An empty token
// sequence is a no-op. A failed resolution prints
// "<cmd>: command not found" and returns ErrNotFound; that message is
// the only user-visible error path here. Start failures and non-zero
// child exits are returned without any diagnostic, preserving the
// shell's silent handling of both.
func (l *Launcher) Run(tokens []string) error {

	if len(tokens) == 0 {
		return nil
	}

	name := tokens[0]

	dirs := pathres.Split(l.Getenv(l.PathVar))
	resolved, ok := pathres.FindExecutable(l.Fs, dirs, name)
	if !ok {
		fmt.Fprintf(l.Stderr, "%s: command not found\n", name)
		return fmt.Errorf("minsh: %s: %w", name, ErrNotFound)
	}

	cmd := l.command(resolved, tokens)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("minsh: %s: %w", name, err)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("minsh: %s: %w", name, err)
	}

	return nil

}

// command builds the child process for a resolved executable. Element 0
// of the argument vector is rewritten to the resolved path's base name
// so the child sees a conventional argv[0]. Any redirection descriptor
// the argument builder produced is dropped here; the child inherits the
// shell's environment and standard streams unchanged.
func (l *Launcher) command(resolved string, tokens []string) *exec.Cmd {

	args, _ := argv.Build(tokens)

	if len(args) == 0 {
		args = []string{argv.Basename(resolved)}
	} else {
		args[0] = argv.Basename(resolved)
	}

	return &exec.Cmd{
		Path:   resolved,
		Args:   args,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

}
