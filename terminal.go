package console

import (
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the interactive terminal device for
// testability and cross-platform compatibility.
//
// The wait state machine is the only consumer: it needs raw-mode switching
// so single key presses arrive immediately, a blocking rune read, a
// non-blocking pending-input check for the countdown poll and the drain
// loops, and the window size for cursor clamping.
//
// Implementations:
//   - realTerminal: the controlling terminal via go-tty
//   - mockTerminal: deterministic input for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Buffered() bool                       // Report whether a read would return without blocking
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface on the process's controlling
// terminal.
//
// go-tty opens /dev/tty (or the Windows console) directly, so key reads work
// even while standard input is consumed elsewhere. Raw mode is managed with
// golang.org/x/term against stdin: the original state is captured before
// every SetRaw and cleared after Restore, so repeated enter/exit cycles each
// restore a fresh baseline. The 'closed' flag prevents a double Close from
// panicking on Windows, and Size falls back to 80x24 rather than reporting
// zero dimensions.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd       int         // File descriptor for stdin for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

// newRealTerminal opens the controlling terminal. It fails when the process
// has none, which callers treat as a non-interactive session.
func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current terminal state before entering raw mode so each
	// enter/exit cycle restores a fresh baseline.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Reset the state so that SetRaw can capture a fresh baseline next time
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback to prevent divide by zero and degenerate wrapping
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	// Return size as 1 for single rune (compatible with io.RuneReader)
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
