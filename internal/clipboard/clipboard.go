// Package clipboard provides the copy target for calculator results.
// Clipboard access is fallible: headless hosts and disabled configurations
// report apperrors.ErrClipboardUnavailable.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/ndewijer/VAT-Calculator-Backend/internal/apperrors"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the clipboard of the host running the server.
type System struct{}

// NewSystem returns a Writer backed by the host clipboard.
func NewSystem() *System {
	return &System{}
}

// WriteText places text on the host clipboard.
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return apperrors.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrClipboardUnavailable, err)
	}
	return nil
}

// Disabled is used when CLIPBOARD_ENABLED is false; every write fails.
type Disabled struct{}

// WriteText always reports the clipboard as unavailable.
func (Disabled) WriteText(string) error {
	return apperrors.ErrClipboardUnavailable
}
