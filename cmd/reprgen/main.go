package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	reprgeninternal "github.com/sublee/reprgen/internal/reprgen"
)

var Version = "dev"

func init() {
	reprgeninternal.Version = Version
}

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(run(context.Background(), os.Args[1:], wd, os.Environ(), os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit status.
func run(ctx context.Context, args []string, wd string, env []string, stdout, stderr io.Writer) int {
	v := viper.New()
	v.SetEnvPrefix("REPRGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	a := &app{
		wd:     wd,
		env:    env,
		stdout: stdout,
		stderr: stderr,
		v:      v,
	}
	defer a.sync()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		a.report(err)
		return 1
	}
	return 0
}
