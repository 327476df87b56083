// Package shell contains the core interactive loop and orchestration
// logic for minsh. It wires together configuration, the readline-based
// terminal, builtin command dispatch and external command execution.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"minsh/internal/builtin"
	"minsh/internal/completer"
	"minsh/internal/config"
	"minsh/internal/launcher"
	"minsh/internal/painter"
	"minsh/internal/prompt"
	"minsh/internal/tokenizer"
)

// Session holds the runtime state of the interactive shell, built once
// at startup and threaded through the loop: the interactive flag, the
// line counter, the terminal, the prompt painter and the launcher for
// external commands. Nothing here lives in package globals.
type Session struct {
	interactive bool                 // whether stdin is a terminal; prompts print only when true
	lineNum     int                  // processed-line counter shown in the prompt, starts at 0
	maxLineLen  int                  // input lines longer than this are truncated with a diagnostic
	terminal    *readline.Instance   // readline instance used to read user input
	completer   *completer.Completer // tab-completion tree, refreshed per iteration
	painter     painter.Painter      // prompt styling
	launcher    *launcher.Launcher   // external-command resolution and execution
	stdout      io.Writer            // builtin output stream
	stderr      io.Writer            // diagnostic stream
}

// Run boots a session and drives the read-dispatch-prompt loop. It
// returns when EOF is received; the exit builtin terminates the whole
// process before this returns.
func Run() {

	session, err := boot()
	if err != nil {
		panic(err)
	}

	defer session.exit()

	session.loop()

}

// boot initializes the shell runtime. It loads configuration (falling
// back to defaults on error) and creates the readline terminal with
// history, interrupt and completion support. The initialized Session is
// returned or an error if terminal creation fails.
func boot() (*Session, error) {

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = config.Default()
	}

	tabCompleter := completer.NewCompleter()

	terminal, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.Terminal.HistoryFile,
		HistoryLimit:    cfg.Terminal.HistoryLimit,
		InterruptPrompt: cfg.Terminal.InterruptPrompt,
		EOFPrompt:       "\n" + cfg.Terminal.EOFPrompt,
		AutoComplete:    tabCompleter,
	})
	if err != nil {
		return nil, fmt.Errorf("minsh: boot: failed to create terminal instance: %v", err)
	}

	return &Session{
		interactive: readline.IsTerminal(int(os.Stdin.Fd())),
		maxLineLen:  cfg.Terminal.MaxLineLength,
		terminal:    terminal,
		completer:   tabCompleter,
		painter:     painter.NewPainter(cfg.Prompt),
		launcher:    launcher.New(cfg.Resolver.PathVariable),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}, nil

}

// exit closes the readline terminal.
func (s *Session) exit() {
	_ = s.terminal.Close()
}

// loop reads one line per iteration, tokenizes it and dispatches the
// result. The prompt shows the line counter only on a terminal. An
// interrupt at the prompt continues the loop, EOF ends it; every read
// line advances the counter, blank ones included.
func (s *Session) loop() {

	for {

		if s.interactive {
			s.completer.Update()
			s.terminal.SetPrompt(prompt.Render(s.painter, s.lineNum))
		} else {
			s.terminal.SetPrompt("")
		}

		line, err := s.terminal.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if errors.Is(err, io.EOF) {
				return
			}
			panic(err)
		}

		s.lineNum++

		tokens, err := tokenizer.Split(s.clip(line))
		if err != nil {
			fmt.Fprintln(s.stderr, err)
			continue
		}

		s.dispatch(tokens)

	}

}

// clip enforces the configured line-length bound. Oversized input is
// truncated with an explicit diagnostic rather than silently corrupted.
func (s *Session) clip(line string) string {
	if s.maxLineLen > 0 && len(line) > s.maxLineLen {
		fmt.Fprintf(s.stderr, "minsh: line longer than %d bytes, truncated\n", s.maxLineLen)
		return line[:s.maxLineLen]
	}
	return line
}

// dispatch routes one token sequence: an empty line is a no-op, a
// builtin match runs inside the shell process, anything else goes to
// the launcher. Builtin lookup runs first, so a builtin name is never
// resolved against the search path. Errors the launcher reports beyond
// its own not-found diagnostic stay silent here; each failure ends only
// the current command, never the loop.
func (s *Session) dispatch(tokens []string) {

	if len(tokens) == 0 {
		return
	}

	if run, ok := builtin.Lookup(tokens[0]); ok {
		_ = run(tokens, s.stdout, s.stderr)
		return
	}

	_ = s.launcher.Run(tokens)

}
