package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/recordlink"
	"github.com/hupe1980/recordlink/dataset"
)

type resolveFlags struct {
	config      string
	output      string
	blocking    string
	linkage     string
	threshold   float64
	tight       string
	workers     int
	seed        uint32
	criteria    int
	hasher      string
	metricsFile string
	logLevel    string
	logFormat   string
	noEval      bool
}

func newResolveCmd() *cobra.Command {
	var f resolveFlags

	cmd := &cobra.Command{
		Use:   "resolve <records>",
		Short: "Cluster the records of a dataset into entities",
		Long: `Load JSON-lines records, resolve them and write one cluster per line.

Without --output clusters are printed to stdout. When records carry gold
labels, pairwise F1, cluster F1 and the variation of information are
reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return runResolve(cmd, args[0], f, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.output, "output", "o", "", "Cluster output location (.zst/.lz4 compress)")
	fs.StringVar(&f.blocking, "blocking", "", "Blocking method: none, canopies, lego")
	fs.StringVar(&f.linkage, "linkage", "", "Linkage: min, max, mean")
	fs.Float64Var(&f.threshold, "threshold", 0, "Similarity a merge must exceed")
	fs.StringVar(&f.tight, "tight", "", "Canopy tight threshold: inverse, inversesqrt, inverselog")
	fs.IntVar(&f.workers, "workers", 0, "Concurrent canopy clustering runs")
	fs.Uint32Var(&f.seed, "seed", 0, "MinHash seed for lego criteria")
	fs.IntVar(&f.criteria, "criteria", 0, "Number of lego MinHash criteria")
	fs.StringVar(&f.hasher, "hasher", "", "MinHash hasher: jenkins, murmur3, xxh3")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: text, json")
	fs.BoolVar(&f.noEval, "no-eval", false, "Skip evaluation against gold labels")
	return cmd
}

// load reads the config file and applies every flag set explicitly.
func (f resolveFlags) load(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("blocking") {
		cfg.Blocking = f.blocking
	}
	if changed("linkage") {
		cfg.Linkage = f.linkage
	}
	if changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if changed("tight") {
		cfg.Canopy.Tight = f.tight
	}
	if changed("workers") {
		cfg.Canopy.Workers = f.workers
	}
	if changed("seed") {
		cfg.Lego.Seed = f.seed
	}
	if changed("criteria") {
		cfg.Lego.Criteria = f.criteria
	}
	if changed("hasher") {
		cfg.Lego.Hasher = f.hasher
	}
	if changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	return cfg, nil
}

func newCLILogger(cmd *cobra.Command, c LogConfig) (*recordlink.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return recordlink.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts)), nil
	case "json":
		return recordlink.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts)), nil
	default:
		return nil, fmt.Errorf("log format: unknown %q", c.Format)
	}
}

func runResolve(cmd *cobra.Command, input string, f resolveFlags, cfg Config) error {
	ctx := cmd.Context()

	logger, err := newCLILogger(cmd, cfg.Log)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	metrics := newPromMetrics()
	opts = append(opts,
		recordlink.WithLogger(logger),
		recordlink.WithMetricsCollector(metrics),
	)
	resolver, err := recordlink.New(opts...)
	if err != nil {
		return err
	}

	store, name, err := openLocation(ctx, input, cfg)
	if err != nil {
		return err
	}
	records, err := dataset.Load(ctx, store, name)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "records loaded", "location", input, "count", len(records))

	res, err := resolver.Resolve(ctx, records)
	if err != nil {
		return err
	}

	if err := writeClusters(cmd, f.output, cfg, res, records); err != nil {
		return err
	}

	if !f.noEval {
		e, err := recordlink.Evaluate(res.Clusters, records)
		switch {
		case errors.Is(err, recordlink.ErrNoLabels):
			logger.DebugContext(ctx, "no gold labels, skipping evaluation")
		case err != nil:
			return err
		default:
			logger.LogEvaluation(ctx, e)
			fmt.Fprintf(cmd.ErrOrStderr(), "precision=%.4f recall=%.4f f1=%.4f cluster_f1=%.4f vi=%.4f\n",
				e.Pairwise.Precision, e.Pairwise.Recall, e.Pairwise.F1, e.Cluster.F1, e.VariationOfInformation)
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func writeClusters(cmd *cobra.Command, output string, cfg Config, res *recordlink.Result, records []dataset.Record) error {
	if output == "" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, line := range dataset.ClusterLines(res.Clusters, records) {
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
		return nil
	}

	store, name, err := openLocation(cmd.Context(), output, cfg)
	if err != nil {
		return err
	}
	return dataset.WriteClusters(cmd.Context(), store, name, res.Clusters, records)
}
