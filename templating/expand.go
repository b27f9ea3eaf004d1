package templating

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// DefaultTag opens and closes placeholders.
const DefaultTag = "___"

// Engine expands skeletons with a configurable placeholder
// delimiter. The zero value uses DefaultTag on both sides.
type Engine struct {
	StartTag string
	EndTag   string
}

// Expand substitutes every placeholder in skeleton with its
// value from tokens using the default delimiters.
func Expand(skeleton string, tokens TokenSet) (string, error) {
	var en Engine

	return en.Expand(skeleton, tokens)
}

// Placeholders lists the distinct token names referenced by
// skeleton, in order of first appearance.
func Placeholders(skeleton string) ([]string, error) {
	var en Engine

	return en.Placeholders(skeleton)
}

// Expand substitutes every placeholder in skeleton with its
// resolved value. Text outside placeholders is copied as-is
// and substituted values are not rescanned. On error no
// partial output is returned.
func (en *Engine) Expand(
	skeleton string,
	tokens TokenSet,
) (string, error) {
	const errCtx = "expanding template"

	startTag, endTag := en.tags()

	out, err := fasttemplate.ExecuteFuncStringWithErr(
		skeleton, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			lead, name := en.split(tag)
			if name == "" {
				return io.WriteString(w, startTag+tag+endTag)
			}

			val, err := tokens.Resolve(name)
			if err != nil {
				return 0, err
			}

			return io.WriteString(w, lead+val)
		},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// Placeholders lists the distinct token names referenced by
// skeleton, in order of first appearance.
func (en *Engine) Placeholders(skeleton string) ([]string, error) {
	const errCtx = "listing placeholders"

	startTag, endTag := en.tags()

	var names []string

	seen := make(map[string]struct{})

	_, err := fasttemplate.ExecuteFunc(
		skeleton, startTag, endTag, io.Discard,
		func(_ io.Writer, tag string) (int, error) {
			_, name := en.split(tag)
			if name == "" {
				return 0, nil
			}

			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}

			return 0, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return names, nil
}

// split separates a tag into literal text and token name.
// When the start tag ends in '_', extra leading underscores
// belong to the text before the placeholder, so ____X___
// yields "_" and "X". A tag of only underscores, including
// the empty tag of an underscore run, has no name.
func (en *Engine) split(tag string) (string, string) {
	startTag, _ := en.tags()
	if !strings.HasSuffix(startTag, "_") {
		return "", tag
	}

	name := strings.TrimLeft(tag, "_")

	return tag[:len(tag)-len(name)], name
}

// tags returns the configured start/end tags, falling
// back to DefaultTag.
func (en *Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = DefaultTag
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = DefaultTag
	}

	return startTag, endTag
}
