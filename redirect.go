package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// fder is satisfied by writers backed by a real file descriptor, such as
// *os.File. Writers without a descriptor cannot be probed and are treated
// as redirected.
type fder interface {
	Fd() uintptr
}

// fdRedirected reports whether the stream behind fd is redirected to a file,
// pipe, or null device rather than an interactive terminal.
//
// A stream counts as interactive only when the descriptor is a character
// device AND a terminal-mode query on it succeeds. The second check matters
// on Windows, where a handle opened from the NUL device still reports a
// character-device type but rejects console-mode queries. Cygwin and MSYS
// pseudo-terminals are pipe-backed and fail both checks, so they are
// recognized first.
//
// Any probe failure degrades to "redirected", the conservative answer that
// disables interactive-only behavior.
func fdRedirected(fd uintptr) bool {
	if isatty.IsCygwinTerminal(fd) {
		return false
	}
	if !isatty.IsTerminal(fd) {
		return true
	}
	if _, err := term.GetState(int(fd)); err != nil {
		return true
	}
	return false
}

// writerRedirected probes an arbitrary writer. In-memory writers used in
// tests have no descriptor and always count as redirected.
func writerRedirected(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return true
	}
	return fdRedirected(f.Fd())
}

// colorAllowed resolves whether ANSI color may be emitted on a stream with
// the given redirection state, honoring the conventions shared by most
// command-line tools:
//
//   - NO_COLOR set to anything disables color (https://no-color.org/)
//   - CLICOLOR=0 disables color
//   - CLICOLOR_FORCE set to anything forces color even when redirected
//   - TERM=dumb disables color
//
// With no environment override, color follows the redirection state.
func colorAllowed(redirected bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return !redirected
}
