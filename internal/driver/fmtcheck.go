package driver

import (
	"errors"
	"fmt"

	"vhdlfmt/internal/config"
	"vhdlfmt/internal/format"
)

// ErrRoundTrip is returned by --verify when formatting is not stable.
var ErrRoundTrip = errors.New("round-trip check failed")

// verifyRoundTrip formats src, parses the result and formats it again; the
// unit outline and the text must both be unchanged by the second pass.
func verifyRoundTrip(src []byte, cfg config.Config) error {
	ok, reason := format.CheckRoundTrip(src, cfg)
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRoundTrip, reason)
}
