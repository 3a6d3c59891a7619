package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	embed "github.com/blackwer/rufus-embed"
)

const usageLine = "Usage: embed [flags] <input-path> <output-path> <constant-name>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the tool and returns its exit code. Usage goes to stdout,
// diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	var (
		format    string
		tag       string
		namespace string
		pkg       string
		verbose   bool
	)

	flags := flag.NewFlagSet("embed", flag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() {
		fmt.Fprintln(stdout, usageLine)
		fmt.Fprintf(stdout, "\n\tWrites a source file to <output-path> declaring <constant-name>\n\t  as a string constant holding the text of <input-path>.\n\n")
		fmt.Fprintf(stdout, "Flags:\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&format, "format", string(embed.FormatCPP), "output format: cpp or go")
	flags.StringVar(&tag, "tag", embed.DefaultTag, "raw string delimiter prefix")
	flags.StringVar(&namespace, "namespace", strings.Join(embed.DefaultNamespace(), "::"), "C++ namespace path of the constant")
	flags.StringVar(&pkg, "package", embed.DefaultPackage, "package name of generated Go files")
	flags.BoolVar(&verbose, "verbose", false, "log each step to stderr")

	// Help is a wrong argument count too; flag has already printed usage.
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 3 {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}

	logger := newLogger(stderr, verbose)
	defer logger.Sync()

	e, err := embed.New(embed.Options{
		Format:    embed.Format(format),
		Tag:       tag,
		Namespace: strings.Split(namespace, "::"),
		Package:   pkg,
		Logger:    logger,
	})
	if err != nil {
		logger.Error("invalid flags", zap.Error(err))
		return 1
	}

	input, output, name := flags.Arg(0), flags.Arg(1), flags.Arg(2)
	if err := e.Embed(input, output, name); err != nil {
		logger.Error(err.Error())
		return 1
	}

	logger.Debug("embedded", zap.String("input", input), zap.String("output", output), zap.String("name", name))

	return 0
}

// newLogger writes human-readable entries to w. Errors are written as the
// bare message plus fields, so an OS error reads exactly as the OS reported
// it. Below error level only warnings are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	bareConfig := zap.NewProductionEncoderConfig()
	bareConfig.TimeKey = ""
	bareConfig.LevelKey = ""
	bareConfig.CallerKey = ""
	bareConfig.NameKey = ""
	bareConfig.StacktraceKey = ""

	sink := zapcore.AddSync(w)
	traceCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		sink,
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= level && l < zapcore.ErrorLevel
		}),
	)
	errorCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(bareConfig),
		sink,
		zapcore.ErrorLevel,
	)

	return zap.New(zapcore.NewTee(traceCore, errorCore))
}
