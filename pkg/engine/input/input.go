// Package input turns device key state into per-frame movement intents.
package input

import (
	"bufio"
	"io"
)

// KeyReader decodes key codes from a terminal in raw mode.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r, typically os.Stdin after term.MakeRaw.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadCode blocks until a key arrives and returns its code ("w", "arrow_up",
// "escape", "ctrl_c", "enter"). Unknown sequences return an empty code.
func (kr *KeyReader) ReadCode() (string, error) {
	b1, err := kr.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return kr.readEscape()
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 >= 'A' && b1 <= 'Z':
		return string(b1 + ('a' - 'A')), nil
	case b1 >= 32 && b1 < 127:
		return string(b1), nil
	}
	return "", nil
}

// readEscape reads the rest of an arrow key escape sequence.
// A lone ESC with nothing buffered behind it is the Escape key.
func (kr *KeyReader) readEscape() (string, error) {
	if kr.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := kr.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		// Alt+key: report Escape and leave the key for the next read
		_ = kr.r.UnreadByte()
		return "escape", nil
	}

	b3, err := kr.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
