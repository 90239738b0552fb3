// Package errs provides standardized error types for the drone delivery service.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing (empty customer name or flavor)
//   - ValueIsInvalidError: a value is present but unacceptable (unknown order status)
//   - ValueIsOutOfRangeError: a numeric or duration value is outside its bounds
//   - ObjectNotFoundError: a drone or order cannot be found by its identifier
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() []error returning the sentinel and the cause, so errors.Is
//     matches either
//
// Callers branch on the sentinel and use errors.As when they need the details,
// for instance to tell a missing order from a missing drone.
package errs
