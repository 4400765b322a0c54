package console

import (
	"errors"
	"io"
	"os"
	"testing"
)

// Interface compliance checks.
var (
	_ terminalInterface = (*realTerminal)(nil)
	_ terminalInterface = (*mockTerminal)(nil)
)

func TestMockTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		width  int
		height int
	}{
		{
			name:   "simple input",
			input:  "hello",
			width:  80,
			height: 24,
		},
		{
			name:   "empty input",
			input:  "",
			width:  120,
			height: 30,
		},
		{
			name:   "unicode input",
			input:  "こんにちは",
			width:  100,
			height: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTerminal{
				input:        []rune(tt.input),
				terminalSize: [2]int{tt.width, tt.height},
			}

			// Test SetRaw
			err := mock.SetRaw()
			if err != nil {
				t.Errorf("SetRaw() error = %v", err)
			}
			if !mock.rawMode {
				t.Error("Expected rawMode to be true after SetRaw()")
			}
			if mock.rawCycles != 1 {
				t.Errorf("Expected 1 raw cycle, got %d", mock.rawCycles)
			}

			// Test Size
			w, h, err := mock.Size()
			if err != nil {
				t.Errorf("Size() error = %v", err)
			}
			if w != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, w)
			}
			if h != tt.height {
				t.Errorf("Expected height %d, got %d", tt.height, h)
			}

			// Test Buffered and ReadRune
			for i, expectedRune := range []rune(tt.input) {
				if !mock.Buffered() {
					t.Errorf("Expected Buffered() true before read %d", i)
				}
				r, size, err := mock.ReadRune()
				if err != nil {
					t.Errorf("ReadRune() at position %d error = %v", i, err)
				}
				if r != expectedRune {
					t.Errorf("Expected rune %c, got %c at position %d", expectedRune, r, i)
				}
				if size != 1 {
					t.Errorf("Expected size 1, got %d at position %d", size, i)
				}
			}

			// Test EOF after input is consumed
			if mock.Buffered() {
				t.Error("Expected Buffered() false after consuming all input")
			}
			_, _, err = mock.ReadRune()
			if !errors.Is(err, io.EOF) {
				t.Errorf("Expected EOF after consuming all input, got %v", err)
			}

			// Test Restore
			err = mock.Restore()
			if err != nil {
				t.Errorf("Restore() error = %v", err)
			}
			if mock.rawMode {
				t.Error("Expected rawMode to be false after Restore()")
			}

			// Test Close
			err = mock.Close()
			if err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}
}

func TestMockTerminalInputPosition(t *testing.T) {
	t.Parallel()

	mock := &mockTerminal{
		input: []rune("abc"),
	}

	r1, _, err := mock.ReadRune()
	if err != nil {
		t.Errorf("First ReadRune() error = %v", err)
	}
	if r1 != 'a' {
		t.Errorf("Expected 'a', got %c", r1)
	}
	if mock.inputPos != 1 {
		t.Errorf("Expected position 1, got %d", mock.inputPos)
	}

	r2, _, err := mock.ReadRune()
	if err != nil {
		t.Errorf("Second ReadRune() error = %v", err)
	}
	if r2 != 'b' {
		t.Errorf("Expected 'b', got %c", r2)
	}

	// Input appended after a partial read becomes visible to Buffered.
	mock.input = append(mock.input, 'd')
	if !mock.Buffered() {
		t.Error("Expected Buffered() true with appended input pending")
	}
}

func TestNewMockTerminal(t *testing.T) {
	t.Parallel()

	mock := newMockTerminal("xy")
	w, h, err := mock.Size()
	if err != nil {
		t.Errorf("Size() error = %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("Expected default 80x24, got %dx%d", w, h)
	}
	if !mock.Buffered() {
		t.Error("Expected Buffered() true with preloaded input")
	}
}

func TestRealTerminalHeadless(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping headless terminal test in local environment")
	}

	// CI runners have no controlling terminal. Open must fail cleanly
	// instead of handing back a half-usable device.
	term, err := newRealTerminal()
	if err == nil {
		// A controlling terminal exists after all; just release it.
		if closeErr := term.Close(); closeErr != nil {
			t.Errorf("Close() error = %v", closeErr)
		}
		return
	}
	if term != nil {
		t.Error("Expected a nil terminal alongside the open error")
	}
}
