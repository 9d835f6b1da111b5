// Package sliceerrors provides structured error types for oasslice.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ErrNotLoaded: an operation required a loaded document and none is held
//   - NotFoundError: the requested path/method pair is absent from the document
//   - ParseError: YAML/JSON parsing failures
//   - InvalidSpecError: parseable input that is not a usable specification
//   - InputError: invalid caller input (bad URL, bad format flag)
//   - FetchError: network failures, timeouts, non-2xx HTTP responses
//
// # Usage with errors.Is
//
//	slice, err := s.Extract("/pets/{id}", "GET")
//	if errors.Is(err, sliceerrors.ErrNotFound) {
//	    // endpoint does not exist in the loaded document
//	}
package sliceerrors
