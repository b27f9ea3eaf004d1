package templating

import (
	"fmt"

	"github.com/byte4ever/mvi_template/identifier"
)

// MissingTokenError reports a placeholder whose token has no
// value in the token set.
type MissingTokenError struct {
	Token string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf(
		"missing value for token %s%s%s",
		DefaultTag, e.Token, DefaultTag,
	)
}

// EmptyIdentifierError reports an identifier-position token
// whose value has nothing left after sanitization.
type EmptyIdentifierError struct {
	Token string
	Raw   string
}

func (e *EmptyIdentifierError) Error() string {
	return fmt.Sprintf(
		"token %s%s%s: value %q does not form an identifier",
		DefaultTag, e.Token, DefaultTag, e.Raw,
	)
}

// Unwrap lets callers match identifier.ErrEmpty.
func (e *EmptyIdentifierError) Unwrap() error {
	return identifier.ErrEmpty
}
