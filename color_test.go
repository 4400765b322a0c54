package console

import (
	"bytes"
	"errors"
	"testing"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{
			name:  "plain rgb",
			color: Color{R: 205, G: 49, B: 49},
			want:  "\x1b[38;2;205;49;49m",
		},
		{
			name:  "bold rgb",
			color: Color{R: 1, G: 2, B: 3, Bold: true},
			want:  "\x1b[1;38;2;1;2;3m",
		},
		{
			name:  "black",
			color: Color{},
			want:  "\x1b[38;2;0;0;0m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.color.ToANSI(); got != tt.want {
				t.Errorf("ToANSI() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorToANSIBackground(t *testing.T) {
	t.Parallel()

	c := Color{R: 17, G: 168, B: 205}
	if got := c.ToANSIBackground(); got != "\x1b[48;2;17;168;205m" {
		t.Errorf("ToANSIBackground() = %q", got)
	}
}

func TestResetSequences(t *testing.T) {
	t.Parallel()

	if got := Reset(); got != "\x1b[0m" {
		t.Errorf("Reset() = %q", got)
	}
	if got := DefaultForeground(); got != "\x1b[39m" {
		t.Errorf("DefaultForeground() = %q", got)
	}
	if got := DefaultBackground(); got != "\x1b[49m" {
		t.Errorf("DefaultBackground() = %q", got)
	}
}

func TestEqualColor(t *testing.T) {
	t.Parallel()

	red := Red
	tests := []struct {
		name string
		a, b *Color
		want bool
	}{
		{name: "both default", a: nil, b: nil, want: true},
		{name: "default vs color", a: nil, b: &Red, want: false},
		{name: "same value different pointers", a: &Red, b: &red, want: true},
		{name: "different colors", a: &Red, b: &Green, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := equalColor(tt.a, tt.b); got != tt.want {
				t.Errorf("equalColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBeginColorRelease(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{
		out:          &output,
		colorEnabled: true,
	}

	scope := c.BeginColor(Red)
	if c.fg == nil || *c.fg != Red {
		t.Errorf("Expected foreground Red after BeginColor, got %+v", c.fg)
	}
	if got := output.String(); got != Red.ToANSI() {
		t.Errorf("Expected %q after BeginColor, got %q", Red.ToANSI(), got)
	}

	scope.Release()
	if c.fg != nil {
		t.Errorf("Expected foreground restored to default, got %+v", c.fg)
	}
	want := Red.ToANSI() + DefaultForeground()
	if got := output.String(); got != want {
		t.Errorf("Expected %q after Release, got %q", want, got)
	}

	// A second Release must not restore again.
	scope.Release()
	if got := output.String(); got != want {
		t.Errorf("Expected no output from a repeated Release, got %q", got)
	}
}

func TestBeginColorNested(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{
		out:          &output,
		colorEnabled: true,
	}

	outer := c.BeginColor(Red)
	inner := c.BeginColor(Green)
	if c.fg == nil || *c.fg != Green {
		t.Fatalf("Expected foreground Green inside the inner scope, got %+v", c.fg)
	}

	inner.Release()
	if c.fg == nil || *c.fg != Red {
		t.Errorf("Expected inner Release to restore Red, got %+v", c.fg)
	}

	outer.Release()
	if c.fg != nil {
		t.Errorf("Expected outer Release to restore the default, got %+v", c.fg)
	}

	want := Red.ToANSI() + Green.ToANSI() + Red.ToANSI() + DefaultForeground()
	if got := output.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBeginColorDisabled(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{out: &output}

	scope := c.BeginColor(Red)
	if output.Len() != 0 {
		t.Errorf("Expected no escape bytes with color disabled, got %q", output.String())
	}
	// The logical state still tracks, so scopes balance when color is off.
	if c.fg == nil || *c.fg != Red {
		t.Errorf("Expected foreground bookkeeping set to Red, got %+v", c.fg)
	}

	scope.Release()
	if output.Len() != 0 {
		t.Errorf("Expected no escape bytes from Release, got %q", output.String())
	}
	if c.fg != nil {
		t.Errorf("Expected foreground bookkeeping restored, got %+v", c.fg)
	}
}

func TestWithColor(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{
		out:          &output,
		colorEnabled: true,
	}

	err := c.WithColor(Yellow, func() error {
		return c.Print("warning")
	})
	if err != nil {
		t.Errorf("WithColor() error = %v", err)
	}

	want := Yellow.ToANSI() + "warning" + DefaultForeground()
	if got := output.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if c.fg != nil {
		t.Errorf("Expected foreground restored, got %+v", c.fg)
	}
}

func TestWithColorPropagatesError(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{
		out:          &output,
		colorEnabled: true,
	}

	sentinel := errors.New("inner failure")
	err := c.WithColor(Red, func() error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected the inner error back, got %v", err)
	}
	if c.fg != nil {
		t.Errorf("Expected foreground restored after an error, got %+v", c.fg)
	}
}

func TestWithColorRestoresOnPanic(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	c := &Console{
		out:          &output,
		colorEnabled: true,
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected the panic to propagate")
			}
		}()
		_ = c.WithColor(Red, func() error {
			panic("boom")
		})
	}()

	if c.fg != nil {
		t.Errorf("Expected foreground restored after a panic, got %+v", c.fg)
	}
	want := Red.ToANSI() + DefaultForeground()
	if got := output.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
