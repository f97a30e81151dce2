// Package errs provides the standardized error types used across the
// marketplace service. Every error follows the same pattern: a sentinel
// variable for classification with errors.Is, a struct carrying the details,
// constructors with and without a cause, and an Unwrap method pointing at the
// sentinel.
//
// The kinds map onto the service's error taxonomy:
//
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input, recoverable by the caller correcting the request.
//   - ObjectNotFoundError: missing object OR object in the wrong state for
//     the requested transition; intentionally conflated so responses never
//     leak whether an order exists to a caller who is not a party to it.
//   - UnauthorizedError: caller is not the entitled party.
//   - ConflictError: a compare-and-swap update lost a race; retryable once.
//   - DependencyUnavailableError: an external collaborator is down or not
//     configured. Payment operations propagate it; notification failures are
//     logged and swallowed instead.
package errs
