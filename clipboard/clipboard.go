package clipboard

import (
	"errors"
	"fmt"

	"github.com/andareed/modalstate/logging"
	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52 works.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no clipboard utility is installed (e.g. over SSH).
func Copy(text string) error {
	if !sysclip.Unsupported {
		err := sysclip.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes", len(text))
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed, trying OSC52: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
