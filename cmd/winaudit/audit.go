package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ancients-collective/winaudit/internal/catalog"
	"github.com/ancients-collective/winaudit/internal/config"
	"github.com/ancients-collective/winaudit/internal/engine"
	"github.com/ancients-collective/winaudit/internal/output"
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/sysinfo"
	"github.com/ancients-collective/winaudit/internal/types"
)

// auditOptions holds the audit flags.
type auditOptions struct {
	JSON       string
	HTML       string
	CSV        string
	JSONL      string
	Prom       string
	Categories []string
	Quiet      bool
	Verbose    bool
	NoColor    bool
	ConfigFile string
	Snapshot   string
	Workers    int
}

func addAuditFlags(cmd *cobra.Command, opts *auditOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.JSON, "json", "", "write a JSON report to `FILE`")
	f.StringVar(&opts.HTML, "html", "", "write an HTML report to `FILE`")
	f.StringVar(&opts.CSV, "csv", "", "write a CSV report to `FILE`")
	f.StringVar(&opts.JSONL, "jsonl", "", "write a JSON Lines report to `FILE`")
	f.StringVar(&opts.Prom, "prom", "", "write a node_exporter textfile to `FILE`")
	f.StringSliceVar(&opts.Categories, "category", nil, "audit only these categories (repeatable or comma-separated)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress the console report")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "show every check and debug logging")
	f.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	f.StringVarP(&opts.ConfigFile, "config", "c", "", "read options from a YAML `FILE`")
	f.StringVar(&opts.Snapshot, "snapshot", "", "audit values recorded by 'winaudit backup' instead of the live system")
	f.IntVar(&opts.Workers, "workers", 0, "maximum concurrent categories and checks (0 = CPU count)")
}

func newAuditCommand() *cobra.Command {
	opts := &auditOptions{}
	cmd := &cobra.Command{
		Use:           "audit",
		Short:         "Audit the system (default command)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, opts)
		},
	}
	addAuditFlags(cmd, opts)
	return cmd
}

// applyConfig loads the config file, if any, and fills every option whose
// flag was not set explicitly.
func applyConfig(cmd *cobra.Command, opts *auditOptions) error {
	if opts.ConfigFile == "" {
		return nil
	}
	cfg, err := config.New(catalog.IDs()).Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if !changed("category") {
		opts.Categories = cfg.Categories
	}
	if !changed("workers") {
		opts.Workers = cfg.Workers
	}
	if !changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	if !changed("quiet") {
		opts.Quiet = cfg.Quiet
	}
	set := func(flag string, dst *string, v string) {
		if !changed(flag) {
			*dst = v
		}
	}
	set("json", &opts.JSON, cfg.Outputs.JSON)
	set("html", &opts.HTML, cfg.Outputs.HTML)
	set("csv", &opts.CSV, cfg.Outputs.CSV)
	set("jsonl", &opts.JSONL, cfg.Outputs.JSONL)
	set("prom", &opts.Prom, cfg.Outputs.Prom)
	return nil
}

// targets returns the requested exports in a fixed order.
func (o *auditOptions) targets() []output.Target {
	return config.Outputs{
		JSON:  o.JSON,
		HTML:  o.HTML,
		CSV:   o.CSV,
		JSONL: o.JSONL,
		Prom:  o.Prom,
	}.Targets()
}

// openProber returns the snapshot prober when one was requested, and the
// live system otherwise. host is the machine the facts describe, when known.
func openProber(opts *auditOptions, log *zap.Logger) (p probe.Prober, host string, err error) {
	if opts.Snapshot != "" {
		static, snap, err := probe.LoadSnapshot(opts.Snapshot)
		if err != nil {
			return nil, "", err
		}
		log.Debug("loaded snapshot",
			zap.String("path", opts.Snapshot),
			zap.String("host", snap.Host),
			zap.Time("taken", snap.Taken),
			zap.Int("facts", len(static)),
		)
		return static, snap.Host, nil
	}
	return probe.NewSystem(), "", nil
}

func runAudit(cmd *cobra.Command, opts *auditOptions) error {
	if err := applyConfig(cmd, opts); err != nil {
		return err
	}
	if opts.Verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if opts.Workers < 0 || opts.Workers > config.MaxWorkers {
		return fmt.Errorf("--workers must be between 0 and %d", config.MaxWorkers)
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := newLogger(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()

	isDumb := output.IsDumbTerm()
	if opts.NoColor || isDumb || !isTerminal(stdout) {
		color.NoColor = true
	}

	p, host, err := openProber(opts, log)
	if err != nil {
		return err
	}
	if opts.Verbose {
		p = probe.WithLogging(p, log)
	}

	system := detectSystem(stderr, opts, host, log)

	var progress *progressLine
	engineOpts := []engine.Option{
		engine.WithWorkers(opts.Workers),
		engine.WithLogger(log),
	}
	if !opts.Quiet && isTerminal(stderr) {
		progress = newProgressLine(stderr, isDumb)
		engineOpts = append(engineOpts, engine.WithProgress(progress.Update))
	}

	res, err := engine.New(catalog.All(), p, engineOpts...).Run(cmd.Context(), opts.Categories)
	if err != nil {
		return categoryError(err)
	}
	if progress != nil {
		progress.Done()
	}
	res.System = system

	if !opts.Quiet {
		f := &output.TextFormatter{
			Verbose: opts.Verbose,
			Width:   terminalWidth(stdout),
			Dumb:    isDumb,
		}
		if err := f.Write(stdout, res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return export(stderr, res, opts.targets(), opts.Quiet, log)
}

// detectSystem describes the audited machine. A snapshot describes the
// machine it was recorded on, not this one.
func detectSystem(stderr io.Writer, opts *auditOptions, host string, log *zap.Logger) *types.SystemInfo {
	if opts.Snapshot != "" {
		return &types.SystemInfo{Hostname: host, OS: "windows"}
	}
	info, warnings, err := sysinfo.DetectSystemInfo(sysinfo.NewDetector())
	if err != nil {
		log.Warn("system detection failed", zap.Error(err))
		if !opts.Quiet {
			fmt.Fprintf(stderr, "  ⚠ %v\n", err)
		}
		return nil
	}
	if !opts.Quiet {
		for _, w := range warnings {
			fmt.Fprintf(stderr, "  ⚠ %s\n", w)
		}
	}
	if info.OS != "windows" {
		log.Warn("live probing is only supported on Windows; every fact reads as absent",
			zap.String("os", info.OS))
	}
	return &info
}

// categoryError adds suggestions to an unknown category error.
func categoryError(err error) error {
	var uce *engine.UnknownCategoryError
	if !errors.As(err, &uce) {
		return err
	}
	msg := fmt.Sprintf("Unknown category %q", uce.Name)
	if s := suggestCategories(uce.Name, uce.Known); len(s) > 0 {
		msg += fmt.Sprintf("\n    Did you mean: %s?", strings.Join(s, ", "))
	}
	msg += "\n    Run 'winaudit categories' to list all categories."
	return errors.New(msg)
}

// export writes every target and reports each outcome. Any failure makes
// the command exit 1 after the remaining targets have been attempted.
func export(stderr io.Writer, res *types.AuditResults, targets []output.Target, quiet bool, log *zap.Logger) error {
	var errs []error
	for _, t := range targets {
		if failed := output.Export(res, []output.Target{t}); len(failed) > 0 {
			for _, err := range failed {
				fmt.Fprintf(stderr, "  ✗ %v\n", err)
			}
			errs = append(errs, failed...)
			continue
		}
		if !quiet {
			fmt.Fprintf(stderr, "  ✓ %s report written to %s\n", strings.ToUpper(t.Format), t.Path)
		}
	}
	if len(errs) > 0 {
		log.Error("export failed", zap.Error(errors.Join(errs...)))
		return &exitError{code: 1}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		return tw
	}
	return 0
}
