// Package argv builds the argument vector handed to a newly launched
// program and captures any redirection request found among the tokens.
package argv

import "strings"

// Redirection records a parsed redirection operator and its target.
// The launcher currently drops the descriptor before starting the
// child, so a redirection never reaches the process's file descriptors.
type Redirection struct {
	Operator string // "<" or ">"
	Target   string // token following the operator, may be empty
}

// Build scans tokens in order, copying each into the argument vector
// until a token exactly equal to "<" or ">" is found. The token after
// the operator, when present, becomes the redirection target; an
// operator with nothing after it is tolerated and leaves the target
// empty. Without an operator every token becomes an argument and the
// descriptor is nil. The caller must overwrite element 0 with the base
// name of the resolved executable before launch.
func Build(tokens []string) ([]string, *Redirection) {

	for i, token := range tokens {

		if token != "<" && token != ">" {
			continue
		}

		redirect := &Redirection{Operator: token}
		if i+1 < len(tokens) {
			redirect.Target = tokens[i+1]
		}

		return append([]string{}, tokens[:i]...), redirect

	}

	return append([]string{}, tokens...), nil

}

// Basename returns the final "/"-delimited segment of path. The
// function is total: a path without a separator, or one ending in a
// separator, falls back to the whole input instead of producing an
// undefined value.
func Basename(path string) string {

	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}

	if segment := path[idx+1:]; segment != "" {
		return segment
	}

	return path

}
