// Package stamper gathers token values for template expansion. It parses
// NAME=VALUE assignments, loads token files (YAML, JSON or Bazel-style
// "KEY VALUE" status lines) and substitutes single-brace {VAR} placeholders
// in header formats.
package stamper
