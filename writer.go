package console

// CharDecision describes how a single rune of classified output is rendered.
// A nil color slot leaves that color unchanged, following the same "nil for
// transparent" convention as the named color helpers.
type CharDecision struct {
	Emit       bool   // Emit the rune; false suppresses it entirely
	Foreground *Color // Foreground for this rune (nil keeps the current one)
	Background *Color // Background for this rune (nil keeps the current one)
}

// Classifier assigns a rendering decision to each rune of classified output.
// It must be pure with respect to the console: the writer applies the
// returned colors itself.
type Classifier func(r rune) CharDecision

// WriteFormatted streams text through a classifier that decides, per rune,
// whether it is emitted and in which colors. Suppressed runes produce no
// output at all. The foreground and background colors in force before the
// call are restored afterward on every path, including a write error
// partway through the text.
//
// On a redirected stream, or with color disabled, the emit/suppress
// filtering still applies but no escape bytes are written.
//
// Example:
//
//	// Highlight digits, drop underscores, leave the rest alone.
//	err := c.WriteFormatted("rev_1024", func(r rune) console.CharDecision {
//		switch {
//		case r == '_':
//			return console.CharDecision{}
//		case r >= '0' && r <= '9':
//			return console.CharDecision{Emit: true, Foreground: &console.Cyan}
//		default:
//			return console.CharDecision{Emit: true}
//		}
//	})
func (c *Console) WriteFormatted(text string, classify Classifier) error {
	if classify == nil {
		return c.write(text)
	}

	prevFg, prevBg := c.fg, c.bg
	defer func() {
		// Restore both captured colors unconditionally, but only write the
		// escapes a change actually requires: untouched colors leave the
		// output byte-for-byte identical to the input.
		if !equalColor(c.fg, prevFg) {
			c.setForeground(prevFg)
		}
		if !equalColor(c.bg, prevBg) {
			c.setBackground(prevBg)
		}
	}()

	for _, r := range text {
		decision := classify(r)
		if !decision.Emit {
			continue
		}
		if decision.Foreground != nil && !equalColor(decision.Foreground, c.fg) {
			if err := c.setForeground(decision.Foreground); err != nil {
				return err
			}
		}
		if decision.Background != nil && !equalColor(decision.Background, c.bg) {
			if err := c.setBackground(decision.Background); err != nil {
				return err
			}
		}
		if err := c.write(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteWrapped wraps text to the console width and writes it. The text is
// split on explicit line breaks first and each line is wrapped on its own,
// so pre-formatted paragraphs keep their structure. The wrap width is the
// live window width when output is attached to a terminal, else the
// fallback width.
func (c *Console) WriteWrapped(text string, mode WrapMode) error {
	width := c.Width()
	for _, line := range splitLines(text) {
		if err := c.write(FormatWrapped(line, width, mode)); err != nil {
			return err
		}
	}
	return nil
}

// WriteWrappedFormatted wraps text to the console width and streams each
// wrapped line through the classifier, combining WriteWrapped and
// WriteFormatted.
//
// Wrapping is decided on the text as given, before the classifier runs, so
// a rune the classifier suppresses still occupies a position in the wrap
// calculation. Text that mixes control or marker characters with visible
// ones can therefore wrap a little early.
func (c *Console) WriteWrappedFormatted(text string, mode WrapMode, classify Classifier) error {
	width := c.Width()
	for _, line := range splitLines(text) {
		if err := c.WriteFormatted(FormatWrapped(line, width, mode), classify); err != nil {
			return err
		}
	}
	return nil
}
