// Package console provides width-aware, redirection-safe terminal output
// and simple blocking interactions for command-line tools.
//
// The package answers one question everywhere: is this stream an interactive
// terminal, or is it redirected to a file, pipe, or null device? That answer
// is resolved once, when a Console is created, and every operation adapts to
// it. Text wraps to the live window width on a terminal and to a fixed
// fallback width on a pipe; cursor movement and countdown animation happen
// only on a terminal; color is suppressed on redirected streams and honors
// the NO_COLOR, CLICOLOR, and TERM=dumb conventions.
//
// Key Features:
//
//   - Word wrapping with indent inference for hanging and tabular text
//   - Per-character classified output with suppression and coloring
//   - Clamped cursor movement and line clearing that degrade on pipes
//   - Wait-for-key and visual countdown with ignorable-key filtering
//   - Scoped foreground color changes with guaranteed restoration
//   - Cross-platform compatibility (Windows, macOS, Linux)
//
// Quick Start:
//
//	package main
//
//	import (
//		"log"
//		"time"
//
//		"github.com/nao1215/console"
//	)
//
//	func main() {
//		c := console.New()
//		defer c.Close()
//
//		c.WriteWrapped("A long usage message that re-wraps to however "+
//			"wide the window is right now.", console.WrapNormal)
//
//		if err := c.WaitTimeout("Starting in ", 5*time.Second, true); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Wrapping:
//
// FormatWrapped is a pure function from text and width to wrapped lines.
// Lines break at the last space that fits; a word longer than a whole line
// hard-breaks mid-word. Continuation lines carry an indent inferred from the
// text itself: normal mode repeats the input's leading spaces so hanging
// indents survive re-wrapping, while table mode aligns to the last
// double-space run so the value column of "flag  description" output stays
// aligned.
//
//	console.FormatWrapped("The quick brown fox jumps", 11, console.WrapNormal)
//	// "The quick\nbrown fox\njumps\n"
//
// WriteWrapped and WriteWrappedFormatted wrap against the Console's width:
// the live window width on a terminal, the fallback width otherwise.
//
// Classified Output:
//
// WriteFormatted streams text through a Classifier that returns a
// CharDecision per rune: whether to emit it, and in which colors. The colors
// in force before the call are restored afterward on every path:
//
//	c.WriteFormatted("rev_1024", func(r rune) console.CharDecision {
//		switch {
//		case r == '_':
//			return console.CharDecision{} // suppress
//		case r >= '0' && r <= '9':
//			return console.CharDecision{Emit: true, Foreground: &console.Cyan}
//		default:
//			return console.CharDecision{Emit: true}
//		}
//	})
//
// Waiting:
//
// Wait blocks until a meaningful key press; WaitTimeout gives up after a
// duration and can count the remaining seconds down as a row of dots.
// Terminal reports (focus tracking, bracketed-paste guards) and NUL bytes do
// not count as key presses. Input buffered before the wait starts is
// drained, so a stale keystroke cannot cut a wait short. When standard input
// is redirected both calls return immediately, so the same binary works
// unattended.
//
// Color Scopes:
//
// BeginColor switches the foreground color and returns a scope that
// restores the previous color on Release. Release is idempotent, so the
// usual defer pattern is safe alongside early returns:
//
//	scope := c.BeginColor(console.Red)
//	defer scope.Release()
//
// WithColor wraps the same pairing around a function and restores the color
// even when the function panics.
//
// Thread Safety:
//
// Console instances are not thread-safe. The cursor-column and color
// bookkeeping assume all output flows through a single goroutine, and waits
// block the calling goroutine with no external cancellation.
//
// Resource Management:
//
// Always call Close() when done with a Console to release the terminal
// device opened for interactive waits:
//
//	c := console.New()
//	defer c.Close()
//
// The Close method is safe to call multiple times. After Close, interactive
// operations return ErrClosed while plain output keeps working.
package console
