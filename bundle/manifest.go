package bundle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/mvi_template/identifier"
)

// ManifestName is the manifest file at the bundle root.
const ManifestName = "template.yaml"

// Option types.
const (
	OptionText  = "text"
	OptionCheck = "check"
)

// DefaultHeader is used when the manifest sets no header.
const DefaultHeader = "\n//  {FILENAME}\n//  {PROJECTNAME}\n//\n" +
	"//  Created by {FULLUSERNAME} on {DATE}.\n//"

// ErrInvalidManifest is wrapped by every manifest check
// failure.
var ErrInvalidManifest = errors.New("invalid manifest")

// Option is a value the user supplies when creating files.
// It is exposed to templates as VARIABLE_<Identifier>.
type Option struct {
	Identifier  string `yaml:"identifier"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required"`
	Default     string `yaml:"default"`
}

// FileSpec maps a bundle source skeleton to an output name
// template. An empty Output reuses Source.
type FileSpec struct {
	Source     string `yaml:"source"`
	Output     string `yaml:"output"`
	Executable bool   `yaml:"executable"`
}

// Manifest describes a bundle.
type Manifest struct {
	Kind        string     `yaml:"kind"`
	Summary     string     `yaml:"summary"`
	Description string     `yaml:"description"`
	Header      string     `yaml:"header"`
	Options     []Option   `yaml:"options"`
	Files       []FileSpec `yaml:"files"`
}

func readManifest(fsys fs.FS) (Manifest, error) {
	const errCtx = "reading manifest"

	var ma Manifest

	content, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return ma, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := yaml.Unmarshal(content, &ma); err != nil {
		return ma, fmt.Errorf(
			"%s: decoding yaml: %w", errCtx, err,
		)
	}

	if ma.Header == "" {
		ma.Header = DefaultHeader
	}

	for i := range ma.Options {
		if ma.Options[i].Type == "" {
			ma.Options[i].Type = OptionText
		}
	}

	for i := range ma.Files {
		if ma.Files[i].Output == "" {
			ma.Files[i].Output = ma.Files[i].Source
		}
	}

	return ma, nil
}

func (ma *Manifest) validate(fsys fs.FS) error {
	seen := make(map[string]struct{}, len(ma.Options))

	for _, opt := range ma.Options {
		if !identifier.Valid(opt.Identifier) {
			return fmt.Errorf(
				"%w: option identifier %q is not an identifier",
				ErrInvalidManifest, opt.Identifier,
			)
		}

		if _, dup := seen[opt.Identifier]; dup {
			return fmt.Errorf(
				"%w: duplicate option %q",
				ErrInvalidManifest, opt.Identifier,
			)
		}

		seen[opt.Identifier] = struct{}{}

		switch opt.Type {
		case OptionText:
		case OptionCheck:
			if opt.Default != "" && !isBool(opt.Default) {
				return fmt.Errorf(
					"%w: option %q: check default must be true or false",
					ErrInvalidManifest, opt.Identifier,
				)
			}
		default:
			return fmt.Errorf(
				"%w: option %q: unknown type %q",
				ErrInvalidManifest, opt.Identifier, opt.Type,
			)
		}
	}

	if len(ma.Files) == 0 {
		return fmt.Errorf("%w: no files", ErrInvalidManifest)
	}

	for _, fsp := range ma.Files {
		if !fs.ValidPath(fsp.Source) || fsp.Source == ManifestName {
			return fmt.Errorf(
				"%w: bad source path %q",
				ErrInvalidManifest, fsp.Source,
			)
		}

		if _, err := fs.Stat(fsys, fsp.Source); err != nil {
			return fmt.Errorf(
				"%w: source %q: %w",
				ErrInvalidManifest, fsp.Source, err,
			)
		}
	}

	return nil
}

func isBool(s string) bool {
	return s == "true" || s == "false"
}
