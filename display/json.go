// Package display formats command results for terminals and scripts.
package display

import (
	"encoding/json"
	"os"

	"golang.org/x/term"
)

// MarshalJSON marshals JSON with pretty formatting on a terminal and compact
// formatting when stdout is redirected (CI logs, pipes)
func MarshalJSON(v interface{}) ([]byte, error) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
