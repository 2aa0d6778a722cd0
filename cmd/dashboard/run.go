package main

import (
	"time"

	"go.uber.org/zap"

	"keyword-dashboard/internal/aggregate"
	"keyword-dashboard/internal/config"
	"keyword-dashboard/internal/report"
)

// loadConfig reads the configured file (or the built-in default), applies
// flag overrides and validates. Warnings are logged, errors returned.
func loadConfig(opts *cliOptions, log *zap.Logger) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}

	if opts.baseDir != "" {
		cfg.BaseDir = opts.baseDir
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Warn("config", zap.String("warning", w))
	}
	if err := res.Err(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run aggregates every source, renders the dashboard and writes it. Only a
// render or write failure is returned; missing inputs just yield empty
// sections.
func run(cfg config.Config, log *zap.Logger, now time.Time, runID string) (string, error) {
	log = log.With(zap.String("run", runID))
	log.Info("loading keyword data", zap.String("base_dir", cfg.BaseDir))

	res := aggregate.New(cfg, log).Run()

	r, err := report.NewRenderer(report.Options{
		Title:       cfg.Title,
		RunID:       runID,
		GeneratedAt: now,
	}, log)
	if err != nil {
		return "", err
	}
	html, err := r.RenderBytes(res)
	if err != nil {
		return "", err
	}

	out := cfg.OutputPath()
	if err := report.WriteFile(out, html); err != nil {
		return "", err
	}

	log.Info("dashboard written",
		zap.String("path", out),
		zap.Int("sources", len(res.Sources)),
		zap.Int("records", res.TotalRecords()),
		zap.Int64("volume", res.TotalVolume()),
	)
	return out, nil
}
