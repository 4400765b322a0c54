package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapMode selects the indent-inference strategy FormatWrapped uses for
// continuation lines.
type WrapMode int

// Wrap modes define how the continuation-line indent is derived from the
// input text.
const (
	// WrapNormal indents continuation lines by the input's leading spaces,
	// preserving a hanging indent.
	WrapNormal WrapMode = iota
	// WrapTable indents continuation lines to just past the last run of two
	// consecutive spaces, so tabular "key  value" output re-wraps with the
	// value column aligned.
	WrapTable
)

// minWrapWidth is the narrowest width the wrap loop accepts. A line carries
// at most width-1 cells, so anything narrower cannot make progress and is
// clamped instead of looping forever.
const minWrapWidth = 2

// FormatWrapped wraps input to the target width and returns the result as a
// sequence of lines, each terminated by a line break.
//
// Lines break at the last space that fits within width-1 display cells; when
// a word is longer than a whole line, it hard-breaks mid-word. The space a
// line breaks at is dropped. Every line after the first is prefixed with an
// indent inferred from the input (see WrapMode), and once the first line has
// been emitted the room left for text shrinks by the indent width, so
// continuation lines stay inside the same right margin.
//
// An input that is empty after trimming produces a single line break. Width
// is measured in display cells, which for plain ASCII equals the character
// count; wide runes occupy two cells. A width below the wrappable minimum is
// raised to it rather than rejected.
//
// FormatWrapped is pure: it never consults the terminal. Use WriteWrapped to
// wrap against the live window width.
//
// Example:
//
//	console.FormatWrapped("The quick brown fox jumps", 11, console.WrapNormal)
//	// "The quick\nbrown fox\njumps\n"
func FormatWrapped(input string, width int, mode WrapMode) string {
	if strings.TrimSpace(input) == "" {
		return "\n"
	}
	if width < minWrapWidth {
		width = minWrapWidth
	}

	indent := inferIndent(input, mode)

	var b strings.Builder
	remaining := []rune(input)
	first := true
	for len(remaining) > 0 {
		candidate := fitRunes(remaining, width-1)
		if candidate == 0 {
			candidate = 1 // a single over-wide rune still has to go somewhere
		}

		end := candidate
		consumed := candidate
		if candidate < len(remaining) {
			// Look for a wrap point: the nearest space at or before the
			// candidate. Position 0 is never a wrap point; with no space
			// available the line hard-breaks mid-word.
			pos := candidate
			for pos > 0 && remaining[pos] != ' ' {
				pos--
			}
			if pos > 0 {
				end = pos
				consumed = pos + 1 // the wrap-point space is dropped
			}
		}

		if !first {
			b.WriteString(indent)
		}
		b.WriteString(string(remaining[:end]))
		b.WriteByte('\n')
		remaining = remaining[consumed:]

		if first {
			first = false
			// Continuation lines carry the indent, so the room left for
			// text shrinks once by the indent width.
			width -= len(indent)
			if width < minWrapWidth {
				width = minWrapWidth
			}
		}
	}
	return b.String()
}

// inferIndent derives the continuation-line indent from the input.
//
// Table mode scans for the last run of two consecutive spaces and indents to
// the column just past it; with no such run the indent is empty. Normal mode
// repeats the input's leading spaces.
func inferIndent(input string, mode WrapMode) string {
	rs := []rune(input)
	if mode == WrapTable {
		for i := len(rs) - 2; i >= 0; i-- {
			if rs[i] == ' ' && rs[i+1] == ' ' {
				return strings.Repeat(" ", runewidth.StringWidth(string(rs[:i+2])))
			}
		}
		return ""
	}

	n := 0
	for _, r := range rs {
		if r != ' ' {
			break
		}
		n++
	}
	return strings.Repeat(" ", n)
}

// fitRunes reports how many leading runes of rs fit within limit display
// cells.
func fitRunes(rs []rune, limit int) int {
	cells := 0
	for i, r := range rs {
		cells += runewidth.RuneWidth(r)
		if cells > limit {
			return i
		}
	}
	return len(rs)
}

// splitLines breaks text on explicit line breaks, tolerating Windows line
// endings. A single trailing line break does not produce a phantom empty
// line, but blank lines inside the text are preserved.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
