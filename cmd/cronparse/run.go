package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"cronparse/internal/compat"
	"cronparse/internal/config"
	"cronparse/internal/cronexpr"
	"cronparse/internal/crontab"
	"cronparse/internal/render"
	"cronparse/pkg/logx"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	configPath string
	format     string
	file       string
	watch      bool
	check      bool
	logLevel   string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("cronparse", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSON config file")
	flagSet.StringVar(&opts.format, "format", "", "output format: text, yaml or json")
	flagSet.StringVar(&opts.file, "file", "", "read expressions from a crontab-style file")
	flagSet.BoolVar(&opts.watch, "watch", false, "with --file: re-render whenever the file changes")
	flagSet.BoolVar(&opts.check, "check", false, "report differences from standard cron semantics on stderr")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		printHelp(stderr, flagSet)
		return exitUsage
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return exitOK
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: config: %v\n", err)
		return exitError
	}
	if flagSet.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flagSet.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flagSet.Changed("check") {
		cfg.Output.Check = opts.check
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	svc, log := logx.New(logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File:    logx.FileConfig{Enabled: cfg.Logging.File.Enabled, Path: cfg.Logging.File.Path},
	}, stderr)
	defer svc.Close()

	a := &app{cfg: cfg, format: format, log: log, stdout: stdout, stderr: stderr}

	positional := flagSet.Args()
	switch {
	case opts.watch && opts.file == "":
		fmt.Fprintln(stderr, "error: --watch requires --file")
		return exitUsage
	case opts.file != "" && len(positional) > 0:
		fmt.Fprintln(stderr, "error: pass either --file or an expression, not both")
		return exitUsage
	case opts.file != "" && opts.watch:
		return a.watchFile(ctx, opts.file)
	case opts.file != "":
		return a.parseFile(opts.file)
	case len(positional) != 1:
		fmt.Fprintf(stderr, "error: expected exactly one cron expression argument, got %d\n", len(positional))
		printHelp(stderr, flagSet)
		return exitUsage
	default:
		return a.parseLine(positional[0])
	}
}

type app struct {
	cfg    *config.Config
	format render.Format
	log    logx.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) parseLine(line string) int {
	s, err := cronexpr.Parse(line)
	if err != nil {
		a.log.Debug("parse failed", logx.String("line", line), logx.Err(err))
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}
	a.log.Debug("parsed expression", logx.String("command", s.Command()))

	if err := render.Write(a.stdout, a.format, s); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}
	a.report("", s)
	return exitOK
}

func (a *app) parseFile(path string) int {
	entries, parseErr := crontab.ParseFile(path)
	a.log.Debug("parsed crontab", logx.String("path", path), logx.Int("entries", len(entries)))

	if code := a.writeEntries(entries); code != exitOK {
		return code
	}
	if parseErr != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", parseErr)
		return exitError
	}
	return exitOK
}

func (a *app) watchFile(ctx context.Context, path string) int {
	debounce, err := a.cfg.Watch.DebounceDuration()
	if err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}

	opts := crontab.WatchOptions{
		Debounce:      debounce,
		RendersPerSec: a.cfg.Watch.RendersPerSec(),
		Log:           a.log,
	}
	err = crontab.Watch(ctx, path, opts, func(entries []crontab.Entry, err error) {
		a.log.Info("crontab reloaded", logx.String("path", path), logx.Int("entries", len(entries)))
		a.writeEntries(entries)
		if err != nil {
			fmt.Fprintf(a.stderr, "error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(a.stderr, "error: watch %s: %v\n", path, err)
		return exitError
	}
	return exitOK
}

func (a *app) writeEntries(entries []crontab.Entry) int {
	if len(entries) == 0 {
		return exitOK
	}
	if err := render.Write(a.stdout, a.format, crontab.Schedules(entries)...); err != nil {
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}
	for _, e := range entries {
		a.report(fmt.Sprintf("line %d: ", e.Line), e.Schedule)
	}
	return exitOK
}

// report prints standard-parser divergences when checking is enabled.
func (a *app) report(prefix string, s *cronexpr.Schedule) {
	if !a.cfg.Output.Check {
		return
	}
	rep := compat.Check(s)
	if rep.Rejected != nil {
		fmt.Fprintf(a.stderr, "check: %s%v\n", prefix, rep.Rejected)
		return
	}
	for _, f := range rep.Findings {
		a.log.Debug("divergent field", logx.String("field", f.Field.String()), logx.Ints("extra", f.OnlyHere), logx.Ints("missing", f.OnlyStandard))
		fmt.Fprintf(a.stderr, "check: %s%s\n", prefix, f)
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `cronparse expands a cron expression into every value it matches.

Usage:
  cronparse [flags] "<minute> <hour> <day-of-month> <month> <day-of-week> <command>"
  cronparse [flags] --file crontab [--watch]

Examples:
  cronparse "*/15 0 1,15 * 1-5 /usr/bin/find"
  cronparse --format yaml --check "30 16 * * * tea"

Flags:
%s`, flagSet.FlagUsages())
}
