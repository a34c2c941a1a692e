package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/fileutil"
	"github.com/alnah/go-mdswagger/internal/hints"
	"github.com/alnah/go-mdswagger/internal/site"
)

// runRender rewrites the markers of a single Markdown file.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: render expects exactly one Markdown file", ErrUsage)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	input, err := filepath.Abs(positional[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	raw, err := afero.ReadFile(env.Fs, input)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	if flags.allowArbitraryLocations {
		cfg.Swagger.AllowArbitraryLocations = true
	}

	destDir := filepath.Dir(input)
	if flags.dest != "" {
		if destDir, err = filepath.Abs(flags.dest); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}
	page := mdswagger.Page{
		AbsSrcPath:  input,
		AbsDestPath: filepath.Join(destDir, site.OutputPath(filepath.Base(input))),
	}

	files := mdswagger.NewFiles()
	rw := mdswagger.NewRewriter(
		mdswagger.ResolveConfig(cfg.Swagger, cfg, logger),
		mdswagger.WithFs(env.Fs),
		mdswagger.WithLogger(logger),
	)
	res := rw.Rewrite(string(raw), page, files)

	for _, e := range res.Errors {
		logger.Warnw("swagger marker error", "page", input, "error", e.Error())
	}
	for f := range files.All() {
		logger.Debugw("swagger file registered", "src", f.AbsSrcPath, "dest", f.AbsDestPath)
	}

	if flags.output != "" {
		if err := fileutil.WriteFile(env.Fs, flags.output, []byte(res.Markdown)); err != nil {
			return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		}
	} else if _, err := fmt.Fprint(env.Stdout, res.Markdown); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if flags.strict && len(res.Errors) > 0 {
		return fmt.Errorf("%w: %d in %s: %v%s", ErrMarkerErrors, len(res.Errors), input, res.Errors[0], hints.ForMarker(res.Errors[0]))
	}
	return nil
}
