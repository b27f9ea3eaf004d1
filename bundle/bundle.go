package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/byte4ever/mvi_template/stamper"
	"github.com/byte4ever/mvi_template/templating"
)

// ErrUnsafePath is returned when an expanded output name
// escapes the destination directory.
var ErrUnsafePath = errors.New("output path is not local")

// Bundle is a loaded template bundle.
type Bundle struct {
	Manifest Manifest

	sources map[string]string
}

// File is one rendered output file.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

// Load reads and checks the bundle rooted at fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	const errCtx = "loading bundle"

	ma, err := readManifest(fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := ma.validate(fsys); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	sources := make(map[string]string, len(ma.Files))

	for _, fsp := range ma.Files {
		content, err := fs.ReadFile(fsys, fsp.Source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		sources[fsp.Source] = string(content)
	}

	return &Bundle{Manifest: ma, sources: sources}, nil
}

// Tokens returns in completed with option defaults. A
// required option holding neither a value nor a default is a
// *templating.MissingTokenError.
func (bu *Bundle) Tokens(
	in templating.TokenSet,
) (templating.TokenSet, error) {
	const errCtx = "applying options"

	out := in.Merge(nil)

	for _, opt := range bu.Manifest.Options {
		name := templating.Variable(opt.Identifier)

		val, ok := out[name]

		switch {
		case ok:
		case opt.Default != "":
			val = opt.Default
		case opt.Required:
			return nil, fmt.Errorf(
				"%s: %w", errCtx,
				&templating.MissingTokenError{Token: name},
			)
		case opt.Type == OptionCheck:
			val = "false"
		}

		if opt.Type == OptionCheck && !isBool(val) {
			return nil, fmt.Errorf(
				"%s: option %s must be true or false, got %q",
				errCtx, opt.Identifier, val,
			)
		}

		out[name] = val
	}

	return out, nil
}

// Render expands every bundle file against in. FILENAME,
// FILEBASENAME and FILEHEADER are derived per file unless in
// sets them. Any failure aborts the whole render.
func (bu *Bundle) Render(in templating.TokenSet) ([]File, error) {
	const errCtx = "rendering bundle"

	tokens, err := bu.Tokens(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	files := make([]File, 0, len(bu.Manifest.Files))

	for _, fsp := range bu.Manifest.Files {
		fi, err := bu.renderFile(fsp, tokens)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, fsp.Source, err,
			)
		}

		files = append(files, fi)
	}

	return files, nil
}

// Placeholders lists the token names referenced by the
// bundle's output names and sources, in manifest order.
func (bu *Bundle) Placeholders() ([]string, error) {
	const errCtx = "listing bundle placeholders"

	var names []string

	seen := make(map[string]struct{})

	for _, fsp := range bu.Manifest.Files {
		for _, text := range []string{fsp.Output, bu.sources[fsp.Source]} {
			found, err := templating.Placeholders(text)
			if err != nil {
				return nil, fmt.Errorf(
					"%s: %s: %w", errCtx, fsp.Source, err,
				)
			}

			for _, name := range found {
				if _, ok := seen[name]; !ok {
					seen[name] = struct{}{}
					names = append(names, name)
				}
			}
		}
	}

	return names, nil
}

func (bu *Bundle) renderFile(
	fsp FileSpec,
	tokens templating.TokenSet,
) (File, error) {
	name, err := templating.Expand(fsp.Output, tokens)
	if err != nil {
		return File{}, fmt.Errorf("naming output: %w", err)
	}

	if !filepath.IsLocal(name) {
		return File{}, fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}

	content, err := templating.Expand(
		bu.sources[fsp.Source],
		fileTokens(tokens, name, bu.Manifest.Header),
	)
	if err != nil {
		return File{}, err
	}

	var mode fs.FileMode = 0o644
	if fsp.Executable {
		mode = 0o755
	}

	return File{
		Path:    filepath.ToSlash(name),
		Content: content,
		Mode:    mode,
	}, nil
}

// fileTokens adds the per-file tokens derived from the output
// name. Values already in tokens are kept.
func fileTokens(
	tokens templating.TokenSet,
	name string,
	header string,
) templating.TokenSet {
	base := path.Base(filepath.ToSlash(name))

	derived := templating.TokenSet{
		templating.TokenFileName:     base,
		templating.TokenFileBaseName: strings.TrimSuffix(base, path.Ext(base)),
	}

	ft := derived.Merge(tokens)

	if _, ok := ft[templating.TokenFileHeader]; !ok {
		ft[templating.TokenFileHeader] = stamper.Stamp(header, ft)
	}

	return ft
}
