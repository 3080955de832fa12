//go:build !linux

package main

import "os"

// stderrIsTTY reports whether stderr is attached to a terminal.
func stderrIsTTY() bool {
	st, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (st.Mode() & os.ModeCharDevice) != 0
}
