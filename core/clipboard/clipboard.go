// Package clipboard implements the Clipboard interface on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility is available on this system
// (e.g. no xclip, xsel or wl-copy on Linux).
var ErrUnsupported = errors.New("clipboard not supported on this system")

// System writes to the operating system clipboard.
type System struct{}

// New creates a System clipboard.
func New() *System {
	return &System{}
}

// Write copies text to the clipboard verbatim.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
