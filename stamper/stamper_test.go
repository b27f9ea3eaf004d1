package stamper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/mvi_template/stamper"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	got, err := stamper.ParseAssignments([]string{
		"FILEBASENAME=ProfileView",
		"VARIABLE_productName:identifier=profile",
		"EXPR=a=b",
		"EMPTY=",
	})

	require.NoError(t, err)
	assert.Equal(
		t,
		map[string]string{
			"FILEBASENAME":                    "ProfileView",
			"VARIABLE_productName:identifier": "profile",
			"EXPR":                            "a=b",
			"EMPTY":                           "",
		},
		got,
	)
}

func TestParseAssignments_malformed(t *testing.T) {
	t.Parallel()

	for _, pair := range []string{"NOEQUALS", "=value"} {
		_, err := stamper.ParseAssignments([]string{pair})
		require.Error(t, err, pair)
		assert.Contains(t, err.Error(), "parsing assignments")
		assert.Contains(t, err.Error(), pair)
	}
}

func TestLoadFiles_status_lines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"FULLUSERNAME Jane Appleseed\r\nBADLINE\n\nPROJECTNAME Demo\n",
	)

	got, err := stamper.LoadFiles([]string{sf})

	require.NoError(t, err)
	assert.Equal(
		t,
		map[string]string{
			"FULLUSERNAME": "Jane Appleseed",
			"PROJECTNAME":  "Demo",
		},
		got,
	)
}

func TestLoadFiles_yaml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yf := writeTemp(
		t, dir, "tokens.yaml",
		"FILEBASENAME: ProfileView\nYEAR: 2026\nEMPTY:\n",
	)

	got, err := stamper.LoadFiles([]string{yf})

	require.NoError(t, err)
	assert.Equal(t, "ProfileView", got["FILEBASENAME"])
	assert.Equal(t, "2026", got["YEAR"])
	assert.Equal(t, "", got["EMPTY"])
}

func TestLoadFiles_json(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jf := writeTemp(
		t, dir, "tokens.json",
		`{"VARIABLE_productName": "My Feature", "YEAR": 2026, "FLAG": true}`,
	)

	got, err := stamper.LoadFiles([]string{jf})

	require.NoError(t, err)
	assert.Equal(t, "My Feature", got["VARIABLE_productName"])
	assert.Equal(t, "2026", got["YEAR"])
	assert.Equal(t, "true", got["FLAG"])
}

func TestLoadFiles_nested_value_rejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yf := writeTemp(
		t, dir, "tokens.yml",
		"NESTED:\n  a: b\n",
	)

	_, err := stamper.LoadFiles([]string{yf})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "NESTED")
}

func TestLoadFiles_bad_json(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jf := writeTemp(t, dir, "tokens.json", "{not json")

	_, err := stamper.LoadFiles([]string{jf})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding json")
}

func TestLoadFiles_later_file_overrides_earlier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(t, dir, "s1.txt", "VER 1.0\n")
	yf := writeTemp(t, dir, "s2.yaml", "VER: \"2.0\"\n")

	got, err := stamper.LoadFiles([]string{sf, yf})

	require.NoError(t, err)
	assert.Equal(t, "2.0", got["VER"])
}

func TestLoadFiles_missing_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.LoadFiles(
		[]string{"/nonexistent/tokens.txt"},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading token files")
}

func TestStamp_header(t *testing.T) {
	t.Parallel()

	got := stamper.Stamp(
		"//  {FILENAME}\n//  Created by {FULLUSERNAME} in {YEAR}.",
		map[string]string{
			"FILENAME":     "ProfileView.swift",
			"FULLUSERNAME": "Jane",
		},
	)

	assert.Equal(
		t,
		"//  ProfileView.swift\n//  Created by Jane in {YEAR}.",
		got,
	)
}

func TestStamp_empty_format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", stamper.Stamp("", nil))
}

func FuzzStamp(f *testing.F) {
	f.Add("Hello {name}!", "name", "World")
	f.Add("{a}{b}", "a", "x")
	f.Add("{", "k", "v")
	f.Add("}", "k", "v")
	f.Add("{a} and {b}", "a", "{nested}")

	f.Fuzz(func(
		t *testing.T,
		format string,
		key string,
		val string,
	) {
		// We only verify it does not panic.
		_ = stamper.Stamp(format, map[string]string{key: val})
	})
}
