// Package convert coerces loosely typed source values into typed values.
//
// Inputs arrive as CSV strings, SWAPI JSON strings, or JSON scalars and
// lists from supplement files. Every function accepts any of these and
// reports one of three outcomes:
//
//   - a converted value and a nil error
//   - ErrNone when the value is absent or a placeholder ("", "n/a",
//     "none", "unknown")
//   - a *Error when a value is present but cannot be converted
//
// Callers treat ErrNone as an absent field and *Error as an absent field
// worth reporting.
package convert
