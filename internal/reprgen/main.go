// Package reprgeninternal drives the generation of enum conversions for
// packages and schema files.
package reprgeninternal

import (
	"context"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/reprgen/internal/reprgen/diag"
	"github.com/sublee/reprgen/internal/reprgen/parse"
)

var Version string

// DefaultOutput is the name of the generated file in each package.
const DefaultOutput = "reprgen_gen.go"

// Config configures [Main] and [MainSchema].
type Config struct {
	// Tags are additional build tags separated by commas.
	Tags string

	// Tests indicates whether to include test files.
	Tests bool

	// Output is the name of the output file to generate in each package. For
	// schemas, it is the output path and can be used with a single schema
	// only.
	Output string

	// Package is the package name of code generated from schemas which do
	// not name it.
	Package string
}

// Main is the main entry point for reprgen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when loading packages. And patterns are the
// package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error and no output.
func Main(ctx context.Context, log *zap.Logger, wd string, env []string, cfg Config, patterns []string) (map[string][]byte, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	pkgs, err := load(ctx, wd, env, cfg.Tags, cfg.Tests, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded packages", zap.Int("count", len(pkgs)))

	outs := make(map[string][]byte)
	var errs []error

	for _, pkg := range pkgs {
		files, output, ok := variant(pkg, cfg.Output)
		if !ok {
			continue
		}

		rg, err := New(&packages.Package{ID: pkg.ID, Name: pkg.Name, PkgPath: pkg.PkgPath, GoFiles: files}, log)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := rg.Build(); err != nil {
			errs = append(errs, err)
			continue
		}

		code := rg.Generate()
		if len(code) == 0 {
			log.Debug("nothing to generate", zap.String("pkg", pkg.PkgPath))
			continue
		}

		outDir := filepath.Dir(files[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, output)
		outs[out] = code
		log.Info("generated", zap.String("pkg", pkg.PkgPath), zap.String("file", out), zap.Int("enums", len(rg.Enums())))
	}
	if len(errs) != 0 {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, diag.Sorted(diag.Join(errs...))
	}

	return outs, nil
}

// MainSchema generates code from schema files. It returns a map of output
// file paths to their contents. The output of a schema is written next to it
// unless cfg.Output is set.
func MainSchema(log *zap.Logger, cfg Config, files []string) (map[string][]byte, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Output != "" && len(files) > 1 {
		return nil, errors.Newf("output %s is ambiguous for %d schemas", cfg.Output, len(files))
	}

	outs := make(map[string][]byte)
	var errs []error

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, errors.Wrap(err, "read schema"))
			continue
		}

		fset := token.NewFileSet()
		schema, err := parse.NewYAML(fset).ParseSchema(file, src)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		name := schema.Package
		if name == "" {
			name = cfg.Package
		}
		if name == "" {
			errs = append(errs, errors.Newf("%s: package name is required", file))
			continue
		}

		rg := NewSchema(name, fset, schema.Requests, log)
		if err := rg.Build(); err != nil {
			errs = append(errs, err)
			continue
		}

		code := rg.Generate()
		if len(code) == 0 {
			log.Debug("nothing to generate", zap.String("schema", file))
			continue
		}

		out := cfg.Output
		if out == "" {
			out = strings.TrimSuffix(file, filepath.Ext(file)) + "_gen.go"
		}
		outs[out] = code
		log.Info("generated", zap.String("schema", file), zap.String("file", out), zap.Int("enums", len(rg.Enums())))
	}
	if len(errs) != 0 {
		return nil, diag.Sorted(diag.Join(errs...))
	}

	return outs, nil
}

// variant selects the files to generate from and the output file name for a
// loaded package. Test variants such as "p [p.test]" generate from their
// _test.go files only, into a _test.go output:
//
//	p                reprgen_gen.go
//	p [p.test]       reprgen_gen_test.go
//	p_test [p.test]  reprgen_gen_x_test.go
//
// ok is false if there is nothing to generate from, such as the synthesized
// test main.
func variant(pkg *packages.Package, output string) (files []string, out string, ok bool) {
	if strings.HasSuffix(pkg.ID, ".test") {
		return nil, "", false
	}

	if !strings.Contains(pkg.ID, " [") {
		return pkg.GoFiles, output, len(pkg.GoFiles) != 0
	}

	for _, file := range pkg.GoFiles {
		if strings.HasSuffix(file, "_test.go") {
			files = append(files, file)
		}
	}
	if len(files) == 0 {
		return nil, "", false
	}

	base := strings.TrimSuffix(output, ".go")
	if strings.HasSuffix(pkg.Name, "_test") {
		return files, base + "_x_test.go", true
	}
	return files, base + "_test.go", true
}

// load loads packages. Declaration files are included by the build tag.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + parse.BuildTag},
		Tests:      tests,
	}
	if tags != "" {
		cfg.BuildFlags[0] += "," + tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs []error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = append(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return nil, diag.Join(errs...)
	}

	return pkgs, nil
}
