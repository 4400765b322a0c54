package console

import (
	"fmt"
	"strings"
)

// Color represents an RGB foreground or background color with optional bold
// formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// Named colors used by command-line tools for status output. The values
// follow the common dark-terminal palette.
var (
	// Red is the conventional error color.
	Red = Color{R: 205, G: 49, B: 49}
	// Green is the conventional success color.
	Green = Color{R: 13, G: 188, B: 121}
	// Yellow is the conventional warning color.
	Yellow = Color{R: 229, G: 229, B: 16}
	// Cyan is commonly used for identifiers and links.
	Cyan = Color{R: 17, G: 168, B: 205}
	// Gray is commonly used for secondary information.
	Gray = Color{R: 128, G: 128, B: 128}
	// White is a plain high-contrast text color.
	White = Color{R: 229, G: 229, B: 229}
)

// ToANSI converts a Color to an ANSI foreground escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// ToANSIBackground converts a Color to an ANSI background escape sequence.
func (c Color) ToANSIBackground() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Reset returns the ANSI sequence that clears all color and formatting.
func Reset() string {
	return "\x1b[0m"
}

// DefaultForeground returns the ANSI sequence that restores the terminal's
// default foreground color without touching the background.
func DefaultForeground() string {
	return "\x1b[39m"
}

// DefaultBackground returns the ANSI sequence that restores the terminal's
// default background color without touching the foreground.
func DefaultBackground() string {
	return "\x1b[49m"
}

// equalColor compares two color slots where nil means "terminal default".
func equalColor(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ColorScope is a scoped foreground color change. It captures the foreground
// color in force when it was created and restores it on Release. A scope
// releases at most once; extra Release calls are no-ops.
//
// The usual pattern is the same as any paired acquire/release in Go:
//
//	scope := c.BeginColor(console.Red)
//	defer scope.Release()
//	// ... write error output ...
//
// ColorScope must be released on the goroutine that created it, before any
// unrelated write to the console, so the restored color lands in the right
// place in the output stream.
type ColorScope struct {
	console  *Console
	previous *Color
	released bool
}

// BeginColor captures the current foreground color, switches the console to
// the given color, and returns the scope that undoes the change.
func (c *Console) BeginColor(color Color) *ColorScope {
	scope := &ColorScope{
		console:  c,
		previous: c.fg,
	}
	c.setForeground(&color)
	return scope
}

// Release restores the foreground color captured when the scope was created.
// It is safe to call multiple times; only the first call restores.
func (s *ColorScope) Release() {
	if s.released {
		return
	}
	s.released = true
	s.console.setForeground(s.previous)
}

// WithColor runs fn with the console foreground set to the given color and
// guarantees the previous color is restored on every exit path, including a
// panic inside fn.
//
// Example:
//
//	err := c.WithColor(console.Yellow, func() error {
//		return c.Println("working tree is dirty")
//	})
func (c *Console) WithColor(color Color, fn func() error) error {
	scope := c.BeginColor(color)
	defer scope.Release()
	return fn()
}
