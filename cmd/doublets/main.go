// Command doublets answers word-ladder queries over a dictionary file.
//
//	doublets ladder cold warm
//	doublets neighbors cat
//	doublets check cat cot cog dog
//	doublets count
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/doublets/hamming"
	"github.com/katalvlaran/doublets/internal/config"
	"github.com/katalvlaran/doublets/ladder"
	"github.com/katalvlaran/doublets/lexicon"
	"github.com/katalvlaran/doublets/metrics"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

// app carries everything the subcommands share once the lexicon is loaded.
type app struct {
	flags  flags
	cfg    *config.Config
	log    *logrus.Logger
	engine *ladder.Engine
	reg    *prometheus.Registry
	rec    *metrics.Recorder
}

// flags holds the raw persistent flag values.
type flags struct {
	config   string
	dict     string
	logLevel string
	index    bool
	timeout  time.Duration
	metrics  string
}

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("doublets version %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("doublets version %s-dev", version)
}

func main() {
	if err := newRootCmd(&app{log: logrus.New()}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "doublets",
		Short:              "Find word ladders between two words of a dictionary",
		Version:            versionString(),
		PersistentPreRunE:  func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
		PersistentPostRunE: func(*cobra.Command, []string) error { return a.flushMetrics() },
		SilenceUsage:       true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "YAML config file")
	pf.StringVar(&a.flags.dict, "dict", "", "dictionary file, first token per line (env: DOUBLETS_DICT)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (env: DOUBLETS_LOG_LEVEL)")
	pf.BoolVar(&a.flags.index, "index", false, "build the wildcard neighbor index (env: DOUBLETS_INDEX)")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "search deadline (env: DOUBLETS_TIMEOUT)")
	pf.StringVar(&a.flags.metrics, "metrics-file", "", "write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(newLadderCmd(a))
	rootCmd.AddCommand(newNeighborsCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newCountCmd(a))

	return rootCmd
}

// setup resolves configuration and loads the lexicon. A load failure stops
// the program before any query runs.
func (a *app) setup(cmd *cobra.Command) error {
	if !needsLexicon(cmd) {
		return nil
	}
	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	// flags take precedence over env and file
	fs := cmd.Flags()
	if fs.Changed("dict") {
		cfg.Dict = a.flags.dict
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if fs.Changed("index") {
		cfg.Index = a.flags.index
	}
	if fs.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := logrus.ParseLevel(cfg.LogLevel) // validated above
	a.log.SetLevel(level)
	a.log.SetOutput(os.Stderr)

	a.reg = prometheus.NewRegistry()
	if a.rec, err = metrics.NewRecorder(a.reg); err != nil {
		return err
	}

	lex, err := a.loadLexicon(cfg.Dict)
	if err != nil {
		a.log.WithError(err).WithField("dict", cfg.Dict).Error("cannot load dictionary")
		return err
	}
	a.rec.SetLexiconWords(lex.Len())

	opts := []ladder.EngineOption{ladder.WithLogger(a.log), ladder.WithObserver(a.rec)}
	if cfg.Index {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()
		began := time.Now()
		idx, err := hamming.NewIndex(ctx, lex, hamming.WithWorkers(cfg.IndexWorkers))
		if err != nil {
			return fmt.Errorf("building neighbor index: %w", err)
		}
		a.log.WithFields(logrus.Fields{"words": idx.Len(), "elapsed": time.Since(began)}).Debug("neighbor index built")
		opts = append(opts, ladder.WithFinder(idx))
	}
	a.engine = ladder.New(lex, opts...)

	return nil
}

// needsLexicon is false for cobra's own help and completion commands.
func needsLexicon(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

func (a *app) loadLexicon(path string) (*lexicon.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file.

	return lexicon.Load(f, lexicon.WithLogger(a.log))
}

func (a *app) flushMetrics() error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
