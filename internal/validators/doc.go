// Package validators checks and normalizes the arguments of a transform.
//
// Every transform declares a Schema: a map from argument name to a Validator.
// Resolving a set of caller-supplied Args against the schema:
//
//  1. rejects argument names the schema does not declare
//  2. validates and normalizes each supplied value
//  3. substitutes defaults for missing values
//  4. enforces the arguments a selected Method requires
//  5. reports any remaining argument that has no default
//
// Validation is single-pass and stateless. Validators are built once, at
// schema declaration time, and are safe for concurrent use.
//
// # Validators
//
//   - Number: numeric ranges, integrality and oddness
//   - Option: one of a fixed set of strings, default chosen by index
//   - List: every element checked by an element validator
//   - Method: a named method plus the arguments that method requires
//   - Type: a plain Go type check (bool, string, ...)
//
// # Normalization
//
// Values arriving from JSON are float64. A Number that only accepts integers
// normalizes 5.0 to int(5); other numbers normalize to float64. Lists
// normalize to []interface{} with normalized elements. Defaults go through the
// same normalization, so a transform always sees the same Go types.
//
// # Errors
//
// Failures are reported with the typed errors of package errs:
// InvalidArgumentError, ArgumentNotProvidedError and InvalidMethodError.
package validators
