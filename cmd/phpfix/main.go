// Package main is the entry point for the phpfix command-line tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/phpfix/internal/config"
	"github.com/dshills/phpfix/internal/exclude"
	"github.com/dshills/phpfix/internal/format"
	"github.com/dshills/phpfix/internal/notify"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("phpfix %s (%s, %s)\n", version, commit, date)
		return 0
	}

	files := flag.Args()
	if len(files) == 0 && !opts.watch {
		fmt.Fprintln(os.Stderr, "Error: no files given")
		flag.Usage()
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	store := config.NewStore(settingsPath(opts.configPath, cwd))
	manager, err := config.NewManagerFromStore(store, config.CurrentPlatform())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load settings: %v\n", err)
		return 1
	}

	var rec *notify.Recorder
	var reporter notify.Reporter = notify.NewLogReporter(os.Stderr)
	if opts.showLog {
		rec = notify.NewRecorder()
		reporter = rec
	}
	// dumpLog prints the buffered output log to stdout in -o mode.
	dumpLog := func() {
		if rec == nil {
			return
		}
		for _, line := range rec.Drain() {
			fmt.Println(line)
		}
	}

	formatter := format.New(manager,
		format.WithReporter(reporter),
		format.WithWorkspaceRoot(cwd),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixAll := func() int {
		failed := 0
		for _, file := range files {
			if err := fixFile(ctx, formatter, manager, file, opts.diff); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", file, err)
				failed++
			}
		}
		return failed
	}

	failed := fixAll()
	dumpLog()

	if opts.watch {
		watcher, err := config.NewWatcher(store.Path(), func() {
			if err := manager.Reload(); err != nil {
				reporter.Log("settings reload failed: %v", err)
				return
			}
			reporter.Log("settings reloaded from %s", store.Path())
			fixAll()
			dumpLog()
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create watcher: %v\n", err)
			return 1
		}
		defer watcher.Close()
		if err := watcher.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", store.Path(), err)
			return 1
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		<-signals
		return 0
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// fixFile formats one file in place, or prints the scratch path in diff
// mode so the caller can compare the two files.
func fixFile(ctx context.Context, formatter *format.Formatter, manager *config.Manager, path string, diff bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if exclude.Match(manager.Current().Exclude, abs) {
		return nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return err
	}

	result, err := formatter.Format(ctx, string(data), abs, format.Options{Diff: diff})
	if err != nil {
		return err
	}

	if diff {
		fmt.Printf("%s\t%s\n", abs, result)
		return nil
	}
	if result != string(data) {
		return os.WriteFile(abs, []byte(result), 0o644)
	}
	return nil
}

// settingsPath picks the settings file: the explicit flag, or the first
// of .phpfix.toml / .phpfix.yaml in the working directory.
func settingsPath(explicit, cwd string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{".phpfix.toml", ".phpfix.yaml"} {
		p := filepath.Join(cwd, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(cwd, ".phpfix.toml")
}

type options struct {
	configPath  string
	diff        bool
	watch       bool
	showLog     bool
	showVersion bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to settings file")
	flag.StringVar(&opts.configPath, "c", "", "Path to settings file (shorthand)")
	flag.BoolVar(&opts.diff, "diff", false, "Keep the formatted scratch copy and print its path instead of rewriting the file")
	flag.BoolVar(&opts.watch, "watch", false, "Keep running and re-fix when the settings file changes")
	flag.BoolVar(&opts.showLog, "o", false, "Print the output log to stdout after formatting instead of streaming to stderr")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: phpfix [flags] <file>...\n\n")
		fmt.Fprintf(os.Stderr, "Formats PHP files through php-cs-fixer.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}
