package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility is installed.
var ErrClipboardUnavailable = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// copyFunc writes text to a clipboard.
type copyFunc func(text string) error

// systemClipboard copies text using the platform clipboard tools.
func systemClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
