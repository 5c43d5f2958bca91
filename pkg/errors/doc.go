// Package errors defines the coded error type shared by collectors, the
// tunable store and the HTTP layer.
//
// A code survives wrapping with fmt.Errorf, so callers far from the
// failure can still classify it:
//
//	err := errors.Wrap(errors.ErrCodeTimeout, "list PCI devices", ctx.Err()).
//		With("command", "lspci")
//
//	if errors.IsCode(err, errors.ErrCodeUnsupported) {
//		// fall back to the generic provider
//	}
package errors
