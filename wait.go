package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultWaitMessage is the conventional prompt printed before a wait.
const DefaultWaitMessage = "Press any key to continue..."

// defaultTick is the poll slice for the countdown loop.
const defaultTick = 100 * time.Millisecond

const escapeRune = '\x1b'

// Wait blocks until the user presses a meaningful key. The message is
// printed first; an empty message prints nothing. Ignorable input (terminal
// reports, NUL bytes) is discarded and the wait continues.
//
// The wait only engages when the process is interactive: with standard
// input redirected, or no controlling terminal available, Wait returns
// immediately. Input already buffered when the wait starts is drained
// first, so a stale key press cannot cut the wait short.
//
// No line break follows the wait; the terminating key press stands in for
// one.
//
// Example:
//
//	c := console.New()
//	defer c.Close()
//	if err := c.Wait(console.DefaultWaitMessage); err != nil {
//		log.Fatal(err)
//	}
func (c *Console) Wait(message string) error {
	if c.closed {
		return ErrClosed
	}
	if c.inRedirected || c.terminal == nil {
		return nil
	}

	if err := c.terminal.SetRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := c.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
		}
	}()

	c.drainInput()

	if message != "" {
		if err := c.write(message); err != nil {
			return err
		}
	}

	for {
		key, err := c.readKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// The device is gone; there is nothing left to wait for.
				return nil
			}
			return fmt.Errorf("failed to read key: %w", err)
		}
		if key.qualifies() {
			return nil
		}
	}
}

// WaitTimeout blocks until the user presses a meaningful key or the timeout
// elapses, whichever comes first. The message is printed first; an empty
// message prints nothing. A negative timeout counts as zero.
//
// With dots enabled, one dot per full second of timeout is drawn up front
// and the rightmost dot is erased as each second passes, so the remaining
// dots count down the wait. The loop polls for pending input in fixed
// slices (100ms), sleeping between checks; it cannot be cancelled from
// outside. Buffered input is drained both before the wait (stale keys must
// not cut it short) and after it (the triggering keystroke must not leak to
// the next reader).
//
// Like Wait, WaitTimeout returns immediately when the process is not
// interactive. A trailing line break is written after the wait.
//
// Example:
//
//	c := console.New()
//	defer c.Close()
//	// Give the user five seconds to interrupt, counting down visually.
//	if err := c.WaitTimeout("Rewriting history in ", 5*time.Second, true); err != nil {
//		log.Fatal(err)
//	}
func (c *Console) WaitTimeout(message string, timeout time.Duration, dots bool) error {
	if c.closed {
		return ErrClosed
	}
	if c.inRedirected || c.terminal == nil {
		return nil
	}
	if timeout < 0 {
		timeout = 0
	}

	if err := c.terminal.SetRaw(); err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := c.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
		}
	}()

	c.drainInput()

	if message != "" {
		if err := c.write(message); err != nil {
			return err
		}
	}

	// The countdown indicator is static: every dot is drawn up front and
	// erased right-to-left as the seconds pass.
	pendingDots := 0
	if dots {
		pendingDots = int(timeout / time.Second)
		if pendingDots > 0 {
			if err := c.write(strings.Repeat(".", pendingDots)); err != nil {
				return err
			}
		}
	}

	for elapsed := time.Duration(0); elapsed < timeout; {
		if c.keyArrived() {
			break
		}
		c.sleep(c.tick)
		elapsed += c.tick
		if pendingDots > 0 && elapsed%time.Second == 0 {
			c.eraseDot()
			pendingDots--
		}
	}

	c.drainInput()

	return c.write("\r\n")
}

// WaitIfDebug waits for a key only when a debugger is attached to the
// process, as a "keep the window open before it disappears" guard while
// stepping through a tool. It is independent of redirection handling:
// without a debugger attached it does nothing at all.
func (c *Console) WaitIfDebug(message string) error {
	if !debuggerAttached() {
		return nil
	}
	return c.Wait(message)
}

// debuggerAttached reports whether a tracer is attached to the process. It
// reads the Linux TracerPid field; platforms without procfs report false.
// A variable so tests can force the attached path.
var debuggerAttached = func() bool {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if pid, ok := strings.CutPrefix(line, "TracerPid:"); ok {
			return strings.TrimSpace(pid) != "0"
		}
	}
	return false
}

// keyEvent is one unit of keyboard input: a lone rune, or an escape
// sequence payload when more bytes were already pending behind an escape
// rune. A bare Escape press arrives alone and stays a lone rune.
type keyEvent struct {
	r   rune
	seq string
}

// qualifies reports whether the event is meaningful input rather than an
// ignorable report or junk byte.
func (k keyEvent) qualifies() bool {
	if k.seq != "" {
		return !ignorableSequence(k.seq)
	}
	return !ignorableKey(k.r)
}

// ignorableKey reports whether a lone rune never counts as a key press. A
// NUL byte shows up for some modifier chords without carrying input.
func ignorableKey(r rune) bool {
	return r == 0
}

// ignorableSequence reports whether an escape sequence is a terminal report
// rather than a key press. Focus tracking and bracketed-paste guards arrive
// without the user touching the keyboard, so a wait must not treat them as
// the awaited key.
func ignorableSequence(seq string) bool {
	switch seq {
	case "[I", "[O", "[200~", "[201~":
		return true
	}
	return false
}

// readKey reads one key event. When an escape rune arrives with more input
// already pending, the rest of the sequence is collected into the event so
// one physical key press classifies as one event.
func (c *Console) readKey() (keyEvent, error) {
	r, _, err := c.terminal.ReadRune()
	if err != nil {
		return keyEvent{}, err
	}
	if r == escapeRune && c.terminal.Buffered() {
		seq, err := c.readEscapeSequence()
		if err != nil {
			return keyEvent{}, err
		}
		return keyEvent{r: r, seq: seq}, nil
	}
	return keyEvent{r: r}, nil
}

// readEscapeSequence collects the remainder of an escape sequence that is
// already arriving. The loop is bounded and stops early when the device has
// no more pending input, so a malformed sequence cannot stall the wait.
func (c *Console) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		if !c.terminal.Buffered() {
			break
		}
		r, _, err := c.terminal.ReadRune()
		if err != nil {
			return string(seq), err
		}
		seq = append(seq, r)
		if sequenceComplete(string(seq)) {
			break
		}
	}
	return string(seq), nil
}

// sequenceComplete reports whether s is a finished escape-sequence payload.
// CSI sequences ("["-prefixed) end at the first byte in the final range;
// SS3 sequences ("O"-prefixed) carry exactly one rune after the prefix.
func sequenceComplete(s string) bool {
	if len(s) >= 2 && s[0] == 'O' {
		return true
	}
	if len(s) < 2 || s[0] != '[' {
		return false
	}
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		return false
	}
	return last >= '@' && last <= '~'
}

// eraseDot removes the rightmost countdown dot: step back onto it, blank
// it, and step back again.
func (c *Console) eraseDot() {
	_ = c.MoveCursor(-1)
	_ = c.write(" ")
	_ = c.MoveCursor(-1)
}

// keyArrived consumes any input that is already pending and reports whether
// the wait should end: a qualifying key arrived, or the device failed and
// nothing more can arrive.
func (c *Console) keyArrived() bool {
	for c.terminal.Buffered() {
		key, err := c.readKey()
		if err != nil {
			return true
		}
		if key.qualifies() {
			return true
		}
	}
	return false
}

// drainInput discards pending input so stale key presses cannot satisfy a
// wait that has not started yet, and a triggering keystroke does not leak
// to whoever reads input next.
func (c *Console) drainInput() {
	for c.terminal.Buffered() {
		if _, _, err := c.terminal.ReadRune(); err != nil {
			return
		}
	}
}
