// Package templating expands file templates by literal token substitution.
// Placeholders have the form ___NAME___ and are replaced with values from a
// TokenSet using valyala/fasttemplate. Tokens named NAME:identifier or
// NAMEASIDENTIFIER are identifier-position tokens: their value is derived
// from NAME when not given explicitly and is always passed through
// identifier.Sanitize.
//
// Text that only looks like a placeholder is copied through: an opener with
// no closer, and runs of underscores that enclose no token name.
//
// Expansion is all-or-nothing. A placeholder without a value fails with
// *MissingTokenError and no output is produced.
package templating
