// Package errors provides the structured error taxonomy shared by the compile
// and invocation phases.
//
// Every failure carries an ErrorCode so callers can branch on the kind of
// failure without matching message text:
//
//	_, err := binder.Bind(ctx, node, positionals, opts)
//	if errors.Is(err, errors.ErrCodeTypeConversion) {
//	    // bad positional token
//	}
//
// Context holds the names involved (callable, parameter, type) for logging.
package errors
