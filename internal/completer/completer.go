// Package completer provides filesystem- and process-aware tab
// completion for the minsh shell. It dynamically builds completion
// suggestions for common commands based on the current directory
// contents and running system processes.
package completer

import (
	"os"
	"strconv"

	"github.com/chzyer/readline"
	ps "github.com/mitchellh/go-ps"
)

// Completer adapts the shell's dynamic environment (filesystem and
// processes) to the readline.AutoCompleter interface. It regenerates
// command-specific suggestions on each loop iteration.
type Completer struct {
	readlineCompleter *readline.PrefixCompleter
}

// NewCompleter returns a new Completer instance with an empty
// underlying PrefixCompleter.
func NewCompleter() *Completer {
	return &Completer{readlineCompleter: readline.NewPrefixCompleter()}
}

// Update rebuilds the completion tree from the current working
// directory and system state. It scans files, directories and running
// processes to provide up-to-date suggestions for commands like "cd",
// "ls", "kill", "rm", "cat" and others.
func (c *Completer) Update() {

	entries, err := os.ReadDir(".")
	if err != nil {
		return
	}

	var onlyDirs []readline.PrefixCompleterInterface
	var procsToKill []readline.PrefixCompleterInterface
	var fileNames []readline.PrefixCompleterInterface

	for _, entry := range entries {
		if entry.IsDir() {
			fileNames = append(fileNames, readline.PcItem(entry.Name()+"/"))
			onlyDirs = append(onlyDirs, readline.PcItem(entry.Name()+"/"))
		} else {
			fileNames = append(fileNames, readline.PcItem(entry.Name()))
		}
	}

	for _, pid := range livePIDs() {
		procsToKill = append(procsToKill, readline.PcItem(pid))
	}

	c.readlineCompleter = readline.NewPrefixCompleter(
		readline.PcItem("cd", onlyDirs...),
		readline.PcItem("rm", fileNames...),
		readline.PcItem("kill", procsToKill...),
		readline.PcItem("ls", fileNames...),
		readline.PcItem("cat", fileNames...),
		readline.PcItem("grep", fileNames...),
		readline.PcItem("vim", fileNames...),
		readline.PcItem("wc", fileNames...),
	)

}

// Do delegates the completion logic to the underlying PrefixCompleter.
// It satisfies the readline.AutoCompleter interface.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	return c.readlineCompleter.Do(line, pos)
}

// livePIDs returns the IDs of currently running processes as strings,
// used to complete arguments of the "kill" command.
func livePIDs() []string {

	processes, err := ps.Processes()
	if err != nil {
		return nil
	}

	pids := make([]string, 0, len(processes))
	for _, process := range processes {
		pids = append(pids, strconv.Itoa(process.Pid()))
	}

	return pids

}
