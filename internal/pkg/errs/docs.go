// Package errs provides the standardized error types used throughout the
// foodcourt application: missing values, invalid values, out-of-range values,
// missing objects, and duplicate objects.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type carrying the parameter name and offending value
//   - Constructor functions with and without an underlying cause
//   - Error() and Unwrap() methods wiring into the errors package
//
// The HTTP layer maps the sentinels onto response status codes, so command
// handlers and repositories report failures exclusively through this package.
package errs
