package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	reprgeninternal "github.com/sublee/reprgen/internal/reprgen"
)

// app holds the state of a command line execution.
type app struct {
	wd     string
	env    []string
	stdout io.Writer
	stderr io.Writer
	v      *viper.Viper

	log   *zap.Logger
	color bool
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprgen [flags] [packages]",
		Short: "Generate conversions between enums and their integer representations",
		Long: `reprgen generates conversions between enums and their integer representations
for the packages. Enums are declared as struct types in files constrained by
"//go:build reprgen".

Flags can also be set by REPRGEN_* environment variables or .reprgen.yaml in
the working directory.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setup() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPackages(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("tags", "b", "", "comma-separated build tags")
	flags.BoolP("tests", "t", false, "include tests")
	flags.StringP("output", "o", reprgeninternal.DefaultOutput, "output file name")
	bind(a.v, flags, "", "tags", "tests", "output")

	pflags := cmd.PersistentFlags()
	pflags.StringP("color", "c", "auto", "colorize (auto|always|never)")
	pflags.BoolP("verbose", "v", false, "print debug logs")
	bind(a.v, pflags, "", "color", "verbose")

	cmd.AddCommand(newSchemaCmd(a), newVersionCmd(a))
	return cmd
}

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [flags] FILE...",
		Short: "Generate from YAML schema files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runSchema(args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("package", "p", "", "package name of the generated code")
	flags.StringP("output", "o", "", "output path (default: FILE_gen.go next to each schema)")
	bind(a.v, flags, "schema.", "package", "output")
	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(a.stdout, "reprgen", Version)
		},
	}
}

// bind binds the flags to the configuration keys with the prefix.
func bind(v *viper.Viper, flags *pflag.FlagSet, prefix string, names ...string) {
	for _, name := range names {
		if err := v.BindPFlag(prefix+name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// setup reads the configuration file and prepares the logger.
func (a *app) setup() error {
	a.v.SetConfigName(".reprgen")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(a.wd)
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, "read config")
		}
	}

	switch c := a.v.GetString("color"); c {
	case "auto":
		a.color = isatty()
	case "always":
		a.color = true
	case "never":
		a.color = false
	default:
		return errors.Newf("invalid color: %s", c)
	}

	a.log = newLogger(a.stderr, a.v.GetBool("verbose"), a.color)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("read config", zap.String("file", used))
	}
	return nil
}

// newLogger creates a console logger without timestamps.
func newLogger(w io.Writer, verbose, color bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	if color {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func (a *app) sync() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) runPackages(ctx context.Context, patterns []string) error {
	cfg := reprgeninternal.Config{
		Tags:   a.v.GetString("tags"),
		Tests:  a.v.GetBool("tests"),
		Output: a.v.GetString("output"),
	}
	outs, err := reprgeninternal.Main(ctx, a.log, a.wd, a.env, cfg, patterns)
	if err != nil {
		return err
	}
	return a.write(outs)
}

func (a *app) runSchema(files []string) error {
	for i, file := range files {
		if !filepath.IsAbs(file) {
			files[i] = filepath.Join(a.wd, file)
		}
	}

	cfg := reprgeninternal.Config{
		Package: a.v.GetString("schema.package"),
		Output:  a.v.GetString("schema.output"),
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(a.wd, cfg.Output)
	}

	outs, err := reprgeninternal.MainSchema(a.log, cfg, files)
	if err != nil {
		return err
	}
	return a.write(outs)
}

// write writes the generated files in the order of their paths.
func (a *app) write(outs map[string][]byte) error {
	for _, out := range slices.Sorted(maps.Keys(outs)) {
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(a.wd, path)
		}
		if err := os.WriteFile(path, outs[out], 0o644); err != nil {
			return errors.WithStack(err)
		}

		if rel, err := filepath.Rel(a.wd, path); err == nil {
			out = rel
		}
		fmt.Fprintln(a.stdout, "Generated:", out)
	}
	return nil
}

// report prints err to stderr.
func (a *app) report(err error) {
	message := err.Error()
	if a.color {
		message = colorize(message)
	}
	fmt.Fprintln(a.stderr, message)
}
