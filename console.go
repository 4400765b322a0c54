package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Common errors
var (
	// ErrClosed is returned when an interactive operation runs after Close.
	ErrClosed = errors.New("console closed")
)

// defaultFallbackWidth is the wrap width used when the output stream is
// redirected and no window geometry exists.
const defaultFallbackWidth = 80

// Console is the entry point for width-aware, redirection-safe terminal
// output and simple blocking interactions.
//
// A Console resolves the redirection state of standard input and output once,
// at construction, and every operation branches on that resolved state:
// cursor movement and countdown animation only happen on an interactive
// terminal, wrapping uses the live window width only when one exists, and
// color is suppressed on redirected streams. Stream redirection is fixed at
// process start, so the flags never change for the life of the Console.
//
// The Console keeps its own cursor-column and color bookkeeping instead of
// querying the terminal (ANSI terminals cannot report either without a
// round trip), which is accurate as long as all output flows through the
// Console's own methods.
type Console struct {
	config   Config
	out      io.Writer
	errOut   io.Writer
	terminal terminalInterface // nil when no interactive device is available

	inRedirected  bool
	outRedirected bool
	errRedirected bool
	colorEnabled  bool
	errColor      bool

	// Rendering bookkeeping. col is the cursor column implied by everything
	// written so far; fg and bg are the colors in force, nil meaning the
	// terminal default.
	col int
	fg  *Color
	bg  *Color

	// Countdown poll slice and the sleep that paces it; sleep is a field so
	// tests can run the countdown without real delays.
	tick  time.Duration
	sleep func(time.Duration)

	closed bool
}

// Config holds the configuration for a Console.
type Config struct {
	Output        io.Writer // Standard output target (nil for os.Stdout)
	ErrorOutput   io.Writer // Error output target (nil for os.Stderr)
	FallbackWidth int       // Wrap width when output is redirected (default: 80)
	Interactive   bool      // Open the terminal device for waits (default: true)
}

// Option represents a configuration option for a Console.
type Option func(*Config)

// WithOutput redirects console output to the given writer. Writers without
// an underlying file descriptor always count as redirected.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithErrorOutput redirects error reports to the given writer.
func WithErrorOutput(w io.Writer) Option {
	return func(c *Config) {
		c.ErrorOutput = w
	}
}

// WithFallbackWidth sets the wrap width used when output is redirected and
// no terminal geometry is available. Values below the minimum wrappable
// width are raised to it.
//
// Example:
//
//	c := console.New(console.WithFallbackWidth(120))
//	defer c.Close()
func WithFallbackWidth(width int) Option {
	return func(c *Config) {
		c.FallbackWidth = width
	}
}

// WithInteraction enables or disables the interactive terminal device. A
// console built with WithInteraction(false) never opens the terminal, so
// Wait and WaitTimeout return immediately; tools that only format output
// can use this to avoid holding a descriptor on /dev/tty.
func WithInteraction(enabled bool) Option {
	return func(c *Config) {
		c.Interactive = enabled
	}
}

// New creates a Console for the current process.
//
// The redirection state of standard input and output is probed exactly once
// here; the returned Console holds the result for its whole life. New never
// fails: when the process has no controlling terminal the Console still
// works, with every interactive operation degrading to its redirected
// behavior.
//
// Example:
//
//	c := console.New()
//	defer c.Close()
//
//	c.WriteWrapped("usage: tool [options] <path>", console.WrapNormal)
//	if err := c.WaitTimeout("Press any key to continue...", 5*time.Second, true); err != nil {
//		log.Fatal(err)
//	}
func New(options ...Option) *Console {
	config := Config{
		FallbackWidth: defaultFallbackWidth,
		Interactive:   true,
	}
	for _, option := range options {
		option(&config)
	}
	if config.FallbackWidth < minWrapWidth {
		config.FallbackWidth = defaultFallbackWidth
	}

	c := &Console{
		config: config,
		tick:   defaultTick,
		sleep:  time.Sleep,
	}

	c.inRedirected = fdRedirected(os.Stdin.Fd())

	// Setup output writers with color support. When a caller supplies a
	// writer, its own descriptor (if any) decides redirection.
	if config.Output != nil {
		c.out = config.Output
		c.outRedirected = writerRedirected(config.Output)
	} else {
		c.outRedirected = fdRedirected(os.Stdout.Fd())
		c.out = os.Stdout
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			c.out = colorable.NewColorableStdout()
		}
	}
	if config.ErrorOutput != nil {
		c.errOut = config.ErrorOutput
		c.errRedirected = writerRedirected(config.ErrorOutput)
	} else {
		c.errRedirected = fdRedirected(os.Stderr.Fd())
		c.errOut = os.Stderr
		if runtime.GOOS == "windows" {
			c.errOut = colorable.NewColorableStderr()
		}
	}

	c.colorEnabled = colorAllowed(c.outRedirected)
	c.errColor = colorAllowed(c.errRedirected)

	// The terminal device is only useful when key presses can arrive.
	if config.Interactive && !c.inRedirected {
		if t, err := newRealTerminal(); err == nil {
			c.terminal = t
		}
		// Open failure means no controlling terminal; waits are skipped.
	}

	return c
}

// Close releases the interactive terminal device. It is safe to call
// multiple times; interactive operations after Close return ErrClosed while
// plain output keeps working.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.terminal != nil {
		return c.terminal.Close()
	}
	return nil
}

// IsInputRedirected reports whether standard input is attached to a file,
// pipe, or null device rather than an interactive terminal. The value is
// resolved once when the Console is created.
func (c *Console) IsInputRedirected() bool {
	return c.inRedirected
}

// IsOutputRedirected reports whether standard output is redirected. The
// value is resolved once when the Console is created.
func (c *Console) IsOutputRedirected() bool {
	return c.outRedirected
}

// ColorEnabled reports whether ANSI color is emitted on the output stream,
// after redirection state and the NO_COLOR/CLICOLOR/TERM conventions are
// taken into account.
func (c *Console) ColorEnabled() bool {
	return c.colorEnabled
}

// Width returns the column count wrapping and cursor clamping work against:
// the live window width when output is attached to a terminal, else the
// fallback width.
func (c *Console) Width() int {
	if !c.outRedirected {
		if f, ok := c.out.(fder); ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				return w
			}
		}
		if c.terminal != nil {
			if w, _, err := c.terminal.Size(); err == nil && w > 0 {
				return w
			}
		}
	}
	return c.config.FallbackWidth
}

// Print writes text to the console output.
func (c *Console) Print(text string) error {
	return c.write(text)
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...any) error {
	return c.write(fmt.Sprintf(format, args...))
}

// Println writes text to the console output followed by a line break.
func (c *Console) Println(text string) error {
	return c.write(text + "\n")
}

// Errorf reports a formatted message on the error output. When the error
// stream is an interactive terminal the message is wrapped in a red color
// scope, and the previous color is restored in the same write so the
// terminal is never left tinted after an error is reported. A trailing line
// break is added when the message lacks one.
func (c *Console) Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	if !c.errColor {
		_, err := fmt.Fprint(c.errOut, msg)
		return err
	}
	_, err := fmt.Fprint(c.errOut, Red.ToANSI()+msg+Reset())
	return err
}

// write sends text to the output and advances the column bookkeeping.
func (c *Console) write(text string) error {
	c.advance(text)
	_, err := fmt.Fprint(c.out, text)
	return err
}

// writeRaw emits control sequences without touching the column bookkeeping.
func (c *Console) writeRaw(seq string) error {
	_, err := fmt.Fprint(c.out, seq)
	return err
}

// advance updates the implied cursor column for written text. Line breaks
// and carriage returns reset the column; other runes advance it by their
// display width.
func (c *Console) advance(text string) {
	for _, r := range text {
		switch r {
		case '\n', '\r':
			c.col = 0
		default:
			c.col += runewidth.RuneWidth(r)
		}
	}
}

// setForeground records and emits a foreground change. A nil color restores
// the terminal default. Escape bytes are suppressed when color is disabled,
// but the bookkeeping still tracks the logical color so scopes balance.
func (c *Console) setForeground(color *Color) error {
	c.fg = color
	if !c.colorEnabled {
		return nil
	}
	if color == nil {
		return c.writeRaw(DefaultForeground())
	}
	return c.writeRaw(color.ToANSI())
}

// setBackground records and emits a background change, mirroring
// setForeground.
func (c *Console) setBackground(color *Color) error {
	c.bg = color
	if !c.colorEnabled {
		return nil
	}
	if color == nil {
		return c.writeRaw(DefaultBackground())
	}
	return c.writeRaw(color.ToANSIBackground())
}
