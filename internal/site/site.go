// Package site builds a static HTML site from a Markdown docs directory,
// embedding Swagger UI viewers for every swagger marker.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/fileutil"
	"github.com/alnah/go-mdswagger/internal/hints"
	"github.com/alnah/go-mdswagger/internal/pipeline"
)

// Sentinel errors for site builds.
var (
	ErrNoPages   = errors.New("no markdown pages found")
	ErrReadPage  = errors.New("failed to read markdown page")
	ErrWritePage = errors.New("failed to write HTML page")
	ErrCopyAsset = errors.New("failed to copy swagger file")
)

// Options configures a Builder.
type Options struct {
	DocsDir  string // Absolute docs directory
	SiteDir  string // Absolute output directory
	Settings mdswagger.Settings
	Workers  int // Concurrent pages (0 = GOMAXPROCS)
	Fs       afero.Fs
	Logger   *zap.SugaredLogger
}

// PageError records the inline marker errors of one page.
type PageError struct {
	Page string
	Err  error
}

// Report summarizes a build.
type Report struct {
	Pages        int
	Fragments    int
	Assets       int
	MarkerErrors []PageError // Sorted by page
}

// Builder renders a docs tree. Build may be called more than once; ids and
// registered files accumulate across calls.
type Builder struct {
	opts         Options
	fs           afero.Fs
	logger       *zap.SugaredLogger
	rewriter     *mdswagger.Rewriter
	files        *mdswagger.Files
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
}

// NewBuilder creates a Builder sharing one rewriter, id generator and file
// registry across all pages.
func NewBuilder(opts Options) *Builder {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &Builder{
		opts:   opts,
		fs:     opts.Fs,
		logger: opts.Logger,
		rewriter: mdswagger.NewRewriter(opts.Settings,
			mdswagger.WithFs(opts.Fs),
			mdswagger.WithIDGenerator(mdswagger.NewIDGenerator(mdswagger.DefaultIDPrefix)),
			mdswagger.WithLogger(opts.Logger),
		),
		files:        mdswagger.NewFiles(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		converter:    pipeline.NewGoldmarkConverter(),
	}
}

// Files returns the registry of swagger files collected so far.
func (b *Builder) Files() *mdswagger.Files {
	return b.files
}

// Build renders every Markdown page of the docs directory, then copies the
// registered swagger files into the site directory.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	pages, err := DiscoverPages(b.fs, b.opts.DocsDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w in %s%s", ErrNoPages, b.opts.DocsDir, hints.ForNoPages())
	}

	var (
		fragments atomic.Int64
		mu        sync.Mutex
		pageErrs  []PageError
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)

	for _, rel := range pages {
		g.Go(func() error {
			res, err := b.buildPage(gctx, rel)
			if err != nil {
				return err
			}
			fragments.Add(int64(res.Fragments))
			if len(res.Errors) > 0 {
				mu.Lock()
				for _, e := range res.Errors {
					pageErrs = append(pageErrs, PageError{Page: rel, Err: e})
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	assets, err := b.copyAssets(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(pageErrs, func(x, y PageError) int {
		return strings.Compare(x.Page, y.Page)
	})

	return &Report{
		Pages:        len(pages),
		Fragments:    int(fragments.Load()),
		Assets:       assets,
		MarkerErrors: pageErrs,
	}, nil
}

// buildPage renders the page at rel (relative to the docs directory).
func (b *Builder) buildPage(ctx context.Context, rel string) (*mdswagger.Result, error) {
	page := mdswagger.Page{
		AbsSrcPath:  filepath.Join(b.opts.DocsDir, rel),
		AbsDestPath: filepath.Join(b.opts.SiteDir, OutputPath(rel)),
	}

	raw, err := afero.ReadFile(b.fs, page.AbsSrcPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadPage, rel, err)
	}

	doc, err := b.preprocessor.PreprocessMarkdown(ctx, string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	res := b.rewriter.Rewrite(doc.Body, page, b.files)
	for _, e := range res.Errors {
		b.logger.Warnw("swagger marker error", "page", rel, "error", e.Error())
	}

	out, err := b.converter.ToHTML(ctx, doc.Title, res.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	if err := fileutil.WriteFile(b.fs, page.AbsDestPath, []byte(out)); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrWritePage, err, hints.ForOutputDirectory())
	}

	b.logger.Debugw("page built", "page", rel, "dest", page.AbsDestPath, "fragments", res.Fragments)
	return res, nil
}

// copyAssets copies every registered swagger file to its destination.
func (b *Builder) copyAssets(ctx context.Context) (int, error) {
	n := 0
	for f := range b.files.All() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := fileutil.CopyFile(b.fs, f.AbsSrcPath, f.AbsDestPath); err != nil {
			return n, fmt.Errorf("%w: %v", ErrCopyAsset, err)
		}
		b.logger.Debugw("swagger file copied", "src", f.AbsSrcPath, "dest", f.AbsDestPath)
		n++
	}
	return n, nil
}

// DiscoverPages lists the Markdown files under docsDir, relative to it,
// in lexical order. Hidden directories are skipped.
func DiscoverPages(fsys afero.Fs, docsDir string) ([]string, error) {
	var pages []string
	err := afero.Walk(fsys, docsDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != docsDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(path) {
			return nil
		}
		rel, err := filepath.Rel(docsDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering pages: %w", err)
	}
	slices.Sort(pages)
	return pages, nil
}

// OutputPath maps a Markdown page to its HTML output path.
func OutputPath(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
