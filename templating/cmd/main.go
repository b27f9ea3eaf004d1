// Binary mvi_template renders a template bundle, by default the embedded
// MVI SwiftUI view, from tokens given on the command line and in token
// files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/mvi_template/bundle"
	"github.com/byte4ever/mvi_template/stamper"
	"github.com/byte4ever/mvi_template/templating"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

type options struct {
	template   string
	tokens     arrayFlags
	tokenFiles arrayFlags
	name       string
	project    string
	outputDir  string
	overwrite  bool
	list       bool
	asJSON     bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mvi_template", flag.ContinueOnError)

	fs.StringVar(
		&opts.template, "template", "",
		"Template bundle directory (embedded "+bundle.DefaultName+" if empty)",
	)

	fs.Var(
		&opts.tokens,
		"token",
		"Token in NAME=VALUE format (repeatable)",
	)

	fs.Var(
		&opts.tokenFiles,
		"token_file",
		"Token file: .yaml, .json or KEY VALUE lines (repeatable)",
	)

	fs.StringVar(
		&opts.name, "name", "",
		"Shorthand for --token VARIABLE_productName=NAME",
	)

	fs.StringVar(
		&opts.project, "project", "",
		"Project name for the file header (default: working directory name)",
	)

	fs.StringVar(
		&opts.outputDir, "output_dir", "",
		"Output directory (stdout if empty)",
	)

	fs.BoolVar(
		&opts.overwrite, "overwrite", false,
		"Replace existing output files",
	)

	fs.BoolVar(
		&opts.list, "list", false,
		"Print the placeholders the bundle references and exit",
	)

	fs.BoolVar(
		&opts.asJSON, "json", false,
		"With --list, print a JSON array",
	)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	return opts, nil
}

func loadBundle(dir string) (*bundle.Bundle, error) {
	if dir == "" {
		return bundle.Default()
	}

	return bundle.Load(os.DirFS(dir))
}

// hostTokens returns the values the host supplies when the
// user does not.
func hostTokens(project string, now time.Time) templating.TokenSet {
	ts := templating.TokenSet{
		templating.TokenDate: now.Format("02/01/2006"),
		templating.TokenYear: strconv.Itoa(now.Year()),
	}

	if project == "" {
		if wd, err := os.Getwd(); err == nil {
			project = filepath.Base(wd)
		}
	}

	ts["PROJECTNAME"] = project

	if us, err := user.Current(); err == nil {
		ts["FULLUSERNAME"] = us.Name
		if us.Name == "" {
			ts["FULLUSERNAME"] = us.Username
		}
	}

	return ts
}

func collectTokens(opts options, now time.Time) (templating.TokenSet, error) {
	fromFiles, err := stamper.LoadFiles(opts.tokenFiles)
	if err != nil {
		return nil, err
	}

	fromFlags, err := stamper.ParseAssignments(opts.tokens)
	if err != nil {
		return nil, err
	}

	tokens := hostTokens(opts.project, now).
		Merge(fromFiles).
		Merge(fromFlags)

	if opts.name != "" {
		tokens[templating.Variable("productName")] = opts.name
	}

	return tokens, nil
}

func list(out io.Writer, bu *bundle.Bundle, asJSON bool) error {
	names, err := bu.Placeholders()
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(out).Encode(names)
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}

	return nil
}

func run(args []string, stdout io.Writer, now time.Time) error {
	const errCtx = "mvi_template"

	opts, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	bu, err := loadBundle(opts.template)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if opts.list {
		if err := list(stdout, bu, opts.asJSON); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	tokens, err := collectTokens(opts, now)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	files, err := bu.Render(tokens)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if opts.outputDir == "" {
		if err := bundle.Print(stdout, files); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	if err := bundle.WriteAll(opts.outputDir, files, opts.overwrite); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, fi := range files {
		slog.Info(
			"wrote file",
			"path", filepath.Join(opts.outputDir, fi.Path),
		)
	}

	return nil
}

// reportFatal logs err as the error attribute of a "fatal"
// record.
func reportFatal(lg *slog.Logger, err error) {
	lg.Error("fatal", "error", err)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		reportFatal(slog.Default(), err)
		os.Exit(1)
	}
}
