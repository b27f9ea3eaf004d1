// Package identifier turns arbitrary names into identifier-safe forms. It
// strips every rune that is not a letter, digit or underscore and prefixes
// an underscore when the result would start with a digit.
package identifier
