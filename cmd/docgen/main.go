package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrConversionFailed marks batch errors whose per-file causes were already
// reported.
var ErrConversionFailed = errors.New("conversion failed")

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches the command in args and returns the exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch {
	case isCommand(cmd, "convert"):
		err = runConvertCmd(ctx, rest, env)
	case isCommand(cmd, "verify"):
		err = runVerifyCmd(rest, env)
	case isCommand(cmd, "doctor"):
		return runDoctorCmd(rest, env)
	case isCommand(cmd, "version", "--version"):
		fmt.Fprintf(env.Stdout, "docgen %s\n", Version)
	case isCommand(cmd, "help", "-h", "--help"):
		err = runHelp(rest, env)
	case looksLikeMarkdown(cmd):
		// docgen doc.md is shorthand for docgen convert doc.md
		err = runConvertCmd(ctx, args, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrConversionFailed) {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	} else {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

func isCommand(arg string, names ...string) bool {
	for _, n := range names {
		if arg == n {
			return true
		}
	}
	return false
}

// looksLikeMarkdown reports whether arg names a markdown file rather
// than a command.
func looksLikeMarkdown(arg string) bool {
	return isMarkdown(arg)
}

func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	configureMaxProcs(flags.common.verbose, env.Stderr)

	return runConvert(ctx, positional, flags, env)
}

func runVerifyCmd(args []string, env *Environment) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printVerifyUsage(env.Stderr) }
	quiet := fs.BoolP("quiet", "q", false, "only show errors")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runVerify(fs.Args(), *quiet, env)
}

// configureMaxProcs aligns GOMAXPROCS with the container CPU quota, which
// sizes the automatic worker count. The log goes to w in verbose mode only.
func configureMaxProcs(verbose bool, w io.Writer) {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
}
