package bundle

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates/MVI.xctemplate
var embedded embed.FS

// DefaultName names the embedded bundle.
const DefaultName = "MVI.xctemplate"

// Default loads the embedded MVI view bundle.
func Default() (*Bundle, error) {
	const errCtx = "loading default bundle"

	sub, err := fs.Sub(embedded, "templates/"+DefaultName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	bu, err := Load(sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return bu, nil
}
