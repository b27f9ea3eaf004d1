package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrExists is returned when an output file already exists
// and overwriting was not requested.
var ErrExists = errors.New("output file exists")

// ErrDuplicatePath is returned when two files share an output
// path.
var ErrDuplicatePath = errors.New("duplicate output path")

// WriteAll writes files under dir. Every target is checked
// before the first write, so an existing file without
// overwrite, or two files with the same path, leaves dir
// untouched. Each file is written to a temporary sibling and
// renamed into place.
func WriteAll(dir string, files []File, overwrite bool) error {
	const errCtx = "writing files"

	seen := make(map[string]struct{}, len(files))

	for _, fi := range files {
		target := filepath.Join(dir, filepath.FromSlash(fi.Path))

		if _, dup := seen[target]; dup {
			return fmt.Errorf(
				"%s: %w: %s", errCtx, ErrDuplicatePath, target,
			)
		}

		seen[target] = struct{}{}

		if !overwrite {
			_, err := os.Lstat(target)
			if err == nil {
				return fmt.Errorf(
					"%s: %w: %s", errCtx, ErrExists, target,
				)
			}

			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%s: %w", errCtx, err)
			}
		}
	}

	for _, fi := range files {
		if err := writeFile(dir, fi); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}

// Print writes the rendered contents of files to w. With more
// than one file, each is preceded by a "==> path <==" line.
func Print(w io.Writer, files []File) error {
	const errCtx = "printing files"

	for i, fi := range files {
		if len(files) > 1 {
			sep := "\n"
			if i == 0 {
				sep = ""
			}

			if _, err := fmt.Fprintf(w, "%s==> %s <==\n", sep, fi.Path); err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}
		}

		if _, err := io.WriteString(w, fi.Content); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}

func writeFile(dir string, fi File) (retErr error) {
	target := filepath.Join(dir, filepath.FromSlash(fi.Path))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		if retErr != nil {
			_ = tmp.Close()           //nolint:errcheck // already failing
			_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		}
	}()

	if _, err := tmp.WriteString(fi.Content); err != nil {
		return err
	}

	if err := tmp.Chmod(fi.Mode); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), target)
}
