// Package tokenizer turns a raw input line into an ordered sequence of
// string tokens. The splitting itself is delegated to the go-shlex
// lexer; this package only owns the shell-facing error message.
package tokenizer

import (
	"fmt"

	"github.com/anmitsu/go-shlex"
)

// Split converts one input line into its tokens. Token 0, if present,
// is the candidate command name. A lexing failure (for example an
// unterminated quote) yields no tokens and an error the loop reports
// before moving on to the next line.
func Split(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, fmt.Errorf("minsh: syntax error: %v", err)
	}
	return tokens, nil
}
