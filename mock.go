package console

import "io"

// mockTerminal implements terminalInterface for testing.
//
// It plays back a pre-configured input sequence and reports a fixed window
// size, so wait, countdown, and cursor behavior can be exercised without a
// real terminal. Buffered mirrors the real device: it reports true exactly
// while unread input remains, which is what the countdown poll and the drain
// loops key off.
type mockTerminal struct {
	input        []rune // Pre-configured input sequence for testing
	inputPos     int    // Current position in the input sequence
	rawMode      bool   // Track raw mode state for test verification
	rawCycles    int    // Count SetRaw calls for restore-pairing checks
	terminalSize [2]int // Fixed terminal dimensions [width, height]
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawCycles++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *mockTerminal) Close() error {
	return nil
}
