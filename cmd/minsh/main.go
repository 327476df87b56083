// Package main is the entry point of the minsh shell application.
// It simply calls shell.Run() to start the interactive loop.
package main

import "minsh/internal/shell"

// main starts the minsh interactive shell.
func main() {
	shell.Run()
}
