package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/hints"
	"github.com/alnah/go-mdswagger/internal/site"
)

// runBuild renders the configured docs directory.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(positional, " "))
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: --workers must be >= 0, got %d", ErrUsage, flags.workers)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	docsDir, err := cfg.DocsPath()
	if err != nil {
		return err
	}
	siteDir, err := cfg.SitePath()
	if err != nil {
		return err
	}

	settings := mdswagger.ResolveConfig(cfg.Swagger, cfg, logger)
	builder := site.NewBuilder(site.Options{
		DocsDir:  docsDir,
		SiteDir:  siteDir,
		Settings: settings,
		Workers:  flags.workers,
		Fs:       env.Fs,
		Logger:   logger,
	})

	start := time.Now()
	report, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	logger.Infow("site built",
		"pages", report.Pages,
		"viewers", report.Fragments,
		"files", report.Assets,
		"site", siteDir,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if flags.strict && len(report.MarkerErrors) > 0 {
		first := report.MarkerErrors[0]
		return fmt.Errorf("%w: %d, first in %s: %v%s", ErrMarkerErrors, len(report.MarkerErrors), first.Page, first.Err, hints.ForMarker(first.Err))
	}
	return nil
}
