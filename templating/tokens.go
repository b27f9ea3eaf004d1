package templating

import (
	"sort"
	"strings"

	"github.com/byte4ever/mvi_template/identifier"
)

// Well-known tokens filled in by the host.
const (
	TokenFileHeader   = "FILEHEADER"
	TokenFileName     = "FILENAME"
	TokenFileBaseName = "FILEBASENAME"
	TokenDate         = "DATE"
	TokenYear         = "YEAR"

	// VariablePrefix is prepended to template option
	// identifiers, e.g. VARIABLE_productName.
	VariablePrefix = "VARIABLE_"
)

const (
	identifierModifier = ":identifier"
	identifierSuffix   = "ASIDENTIFIER"
)

// TokenSet maps token names, without delimiters, to their
// replacement values.
type TokenSet map[string]string

// Variable returns the token name for template option id.
func Variable(id string) string {
	return VariablePrefix + id
}

// Resolve returns the value substituted for the token name.
// Plain tokens must be present in the set. Identifier-position
// tokens fall back to their base token and are sanitized.
func (ts TokenSet) Resolve(name string) (string, error) {
	base, derived := identifierBase(name)
	if !derived {
		val, ok := ts[name]
		if !ok {
			return "", &MissingTokenError{Token: name}
		}

		return val, nil
	}

	raw, ok := ts[name]
	if !ok {
		raw, ok = ts[base]
	}

	if !ok {
		return "", &MissingTokenError{Token: name}
	}

	id, err := identifier.Sanitize(raw)
	if err != nil {
		return "", &EmptyIdentifierError{Token: name, Raw: raw}
	}

	return id, nil
}

// Merge returns a new set holding ts overlaid with other.
// Values in other win.
func (ts TokenSet) Merge(other TokenSet) TokenSet {
	out := make(TokenSet, len(ts)+len(other))

	for key, val := range ts {
		out[key] = val
	}

	for key, val := range other {
		out[key] = val
	}

	return out
}

// Names returns the token names in sorted order.
func (ts TokenSet) Names() []string {
	names := make([]string, 0, len(ts))
	for name := range ts {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// identifierBase reports whether name is an identifier-position
// token and returns the token it derives from.
func identifierBase(name string) (string, bool) {
	if base, ok := strings.CutSuffix(name, identifierModifier); ok && base != "" {
		return base, true
	}

	if base, ok := strings.CutSuffix(name, identifierSuffix); ok && base != "" {
		return base, true
	}

	return "", false
}
