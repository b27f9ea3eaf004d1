package stamper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/valyala/fasttemplate"
)

// ParseAssignments turns NAME=VALUE pairs into a map. The
// first '=' separates name from value; later pairs override
// earlier ones.
func ParseAssignments(pairs []string) (map[string]string, error) {
	const errCtx = "parsing assignments"

	vars := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf(
				"%s: token must be NAME=VALUE, got %q",
				errCtx, pair,
			)
		}

		vars[name] = val
	}

	return vars, nil
}

// LoadFiles reads token files and merges them into a single
// map, later files overriding earlier ones. Files ending in
// .yaml, .yml or .json hold a flat mapping of scalars; any
// other file is read as "KEY VALUE" status lines.
func LoadFiles(paths []string) (map[string]string, error) {
	const errCtx = "loading token files"

	vars := make(map[string]string)

	for _, pa := range paths {
		content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		loaded, err := decode(pa, content)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, pa, err,
			)
		}

		for key, val := range loaded {
			vars[key] = val
		}
	}

	return vars, nil
}

// Stamp substitutes {VAR} placeholders in format with values
// from vars. Unknown variables are preserved as-is.
func Stamp(format string, vars map[string]string) string {
	ctx := make(map[string]interface{}, len(vars))
	for key, val := range vars {
		ctx[key] = val
	}

	return fasttemplate.ExecuteStringStd(format, "{", "}", ctx)
}

func decode(pa string, content []byte) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(pa)) {
	case ".yaml", ".yml":
		var raw map[string]interface{}
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}

		return scalars(raw)
	case ".json":
		var raw map[string]interface{}
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}

		return scalars(raw)
	default:
		return statusLines(string(content)), nil
	}
}

// statusLines parses "KEY VALUE" lines with the first space as
// delimiter. Lines without a space are skipped.
func statusLines(content string) map[string]string {
	vars := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		key, val, ok := strings.Cut(
			strings.TrimSuffix(line, "\r"), " ",
		)
		if ok && key != "" {
			vars[key] = val
		}
	}

	return vars
}

func scalars(raw map[string]interface{}) (map[string]string, error) {
	vars := make(map[string]string, len(raw))

	for key, val := range raw {
		switch tv := val.(type) {
		case nil:
			vars[key] = ""
		case string:
			vars[key] = tv
		case map[string]interface{}, map[interface{}]interface{}, []interface{}:
			return nil, fmt.Errorf(
				"token %q: value must be a scalar", key,
			)
		default:
			vars[key] = fmt.Sprint(tv)
		}
	}

	return vars, nil
}
