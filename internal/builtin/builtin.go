// Package builtin implements the commands handled inside the shell
// process itself: pwd, cd, ? (help) and exit. The table is fixed at
// process start and the dispatcher consults it before any search-path
// resolution, so a builtin name always shadows a same-named executable.
package builtin

import (
	"fmt"
	"io"
	"os"
)

// Func is a builtin handler. It receives the full token sequence of the
// line (tokens[0] is the builtin's own name) and returns a small status
// code interpreted only inside the shell, never surfaced as the shell's
// own exit code.
type Func func(tokens []string, out, errOut io.Writer) int

// Entry pairs a builtin handler with its command name and help text.
type Entry struct {
	Name string // command name, matched case-sensitively
	Doc  string // one-line description shown by the help builtin
	Run  Func   // handler invoked with the full token sequence
}

// Table is the static builtin table, in help-listing order.
var Table = []Entry{
	{Name: "pwd", Doc: "print working directory", Run: printWorkingDirectory},
	{Name: "cd", Doc: "change directory", Run: changeDirectory},
	{Name: "?", Doc: "show this help menu", Run: nil},
	{Name: "exit", Doc: "exit the command shell", Run: exitShell},
}

// The help entry's handler is assigned here rather than in the literal
// above to break the initialization cycle between Table and help.
func init() {
	for i := range Table {
		if Table[i].Name == "?" {
			Table[i].Run = help
		}
	}
}

// Lookup finds the handler for name with a case-sensitive exact match
// against the table. Returns false for an empty or unknown name.
func Lookup(name string) (Func, bool) {
	for _, entry := range Table {
		if entry.Name == name {
			return entry.Run, true
		}
	}
	return nil, false
}

// help enumerates the builtin table. It has no side effect beyond its
// output and always succeeds.
func help(_ []string, out, _ io.Writer) int {
	for _, entry := range Table {
		fmt.Fprintf(out, "%s - %s\n", entry.Name, entry.Doc)
	}
	return 0
}

// exitShell terminates the whole shell process immediately with status
// 0. It never returns.
func exitShell(_ []string, _, _ io.Writer) int {
	os.Exit(0)
	return 0
}

// changeDirectory changes the working directory to tokens[1]. A missing
// argument or a failed chdir produces no diagnostic; the non-zero
// status stays internal. The silence is documented shell behavior.
func changeDirectory(tokens []string, _, _ io.Writer) int {

	if len(tokens) < 2 {
		return 1
	}

	if err := os.Chdir(tokens[1]); err != nil {
		return 1
	}

	return 0

}

// printWorkingDirectory writes the absolute working directory to out.
// On retrieval failure it reports a diagnostic to errOut and returns 1.
func printWorkingDirectory(_ []string, out, errOut io.Writer) int {

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(errOut, "minsh: pwd: %v\n", err)
		return 1
	}

	fmt.Fprintln(out, dir)
	return 0

}
