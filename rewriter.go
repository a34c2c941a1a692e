package mdswagger

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/alnah/go-mdswagger/internal/fileutil"
)

// Page locates the Markdown document being rewritten.
type Page struct {
	AbsSrcPath  string // Markdown source file
	AbsDestPath string // Rendered output file
}

// Result holds the outcome of rewriting one page.
type Result struct {
	Markdown  string
	Fragments int     // Viewers embedded
	Errors    []error // One *MarkerError per marker replaced by an inline error
}

// Rewriter replaces swagger markers in Markdown pages.
type Rewriter struct {
	settings Settings
	fs       afero.Fs
	ids      *IDGenerator
	logger   *zap.SugaredLogger

	// mu serialises collision checks with registration.
	mu sync.Mutex
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithFs sets the filesystem used to resolve local files.
func WithFs(fsys afero.Fs) Option {
	return func(r *Rewriter) {
		if fsys != nil {
			r.fs = fsys
		}
	}
}

// WithIDGenerator shares an id generator, typically one per build.
func WithIDGenerator(ids *IDGenerator) Option {
	return func(r *Rewriter) {
		if ids != nil {
			r.ids = ids
		}
	}
}

// WithLogger sets the logger used for marker diagnostics.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Rewriter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRewriter creates a Rewriter. Empty viewer URLs in settings fall back to
// DefaultJavaScript and DefaultCSS.
func NewRewriter(settings Settings, opts ...Option) *Rewriter {
	if settings.JavaScript == "" {
		settings.JavaScript = DefaultJavaScript
	}
	if settings.CSS == "" {
		settings.CSS = DefaultCSS
	}

	r := &Rewriter{
		settings: settings,
		fs:       afero.NewOsFs(),
		ids:      NewIDGenerator(DefaultIDPrefix),
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Settings returns the effective settings.
func (r *Rewriter) Settings() Settings {
	return r.settings
}

// OnPageMarkdown rewrites every marker of markdown and returns the new text.
func (r *Rewriter) OnPageMarkdown(markdown string, page Page, files FileRegistry) string {
	return r.Rewrite(markdown, page, files).Markdown
}

// Rewrite replaces markers left to right. Text outside markers is copied
// unchanged. Broken markers become inline error messages; the rest of the page
// is still processed.
func (r *Rewriter) Rewrite(markdown string, page Page, files FileRegistry) *Result {
	res := &Result{}

	m, ok := findMarker(markdown, 0)
	if !ok {
		res.Markdown = markdown
		return res
	}

	var b strings.Builder
	b.Grow(len(markdown))
	pos := 0

	for ok {
		b.WriteString(markdown[pos:m.start])

		fragment, err := r.replace(m, page, files)
		if err != nil {
			err.Marker = markdown[m.start:m.end]
			r.logger.Debugw("swagger marker rejected", "page", page.AbsSrcPath, "marker", err.Marker, "error", err.Message)
			res.Errors = append(res.Errors, err)
			b.WriteString(renderError(err.Message))
		} else {
			res.Fragments++
			b.WriteString(fragment)
		}

		pos = m.end
		m, ok = findMarker(markdown, pos)
	}

	b.WriteString(markdown[pos:])
	res.Markdown = b.String()
	return res
}

// replace renders the fragment for one marker.
func (r *Rewriter) replace(m marker, page Page, files FileRegistry) (string, *MarkerError) {
	if m.arg == "" {
		return "", newMarkerError(ErrUsage, usageMessage)
	}

	url := m.arg
	if m.kind == markerLocal {
		var err *MarkerError
		url, err = r.resolveLocal(m.arg, page, files)
		if err != nil {
			return "", err
		}
	}

	return renderFragment(r.settings, url, r.ids.Next()), nil
}

// resolveLocal locates name next to the page, registers it for copy next to
// the rendered page and returns the URL the viewer loads it from.
func (r *Rewriter) resolveLocal(name string, page Page, files FileRegistry) (string, *MarkerError) {
	if !r.settings.AllowArbitraryLocations && fileutil.IsFilePath(name) {
		return "", newMarkerError(ErrArbitraryLocation, arbitraryLocationMessage)
	}
	if strings.ContainsRune(name, 0) {
		return "", newMarkerError(ErrInvalidPath, "Invalid path. Path contains a null byte.")
	}

	srcPath := filepath.Join(filepath.Dir(page.AbsSrcPath), name)
	base := filepath.Base(srcPath)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", newMarkerError(ErrInvalidPath, fmt.Sprintf("Invalid path. %s has an empty name.", name))
	}

	info, err := r.fs.Stat(srcPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newMarkerError(ErrFileNotFound, fmt.Sprintf("File %s not found.", name))
		}
		return "", newMarkerError(ErrInvalidPath, fmt.Sprintf("Invalid path. %v", err))
	}
	if info.IsDir() {
		return "", newMarkerError(ErrInvalidPath, fmt.Sprintf("Invalid path. %s is a directory.", name))
	}

	f := newFile(base, filepath.Dir(srcPath), filepath.Dir(page.AbsDestPath))
	if err := r.register(f, files); err != nil {
		return "", err
	}
	return filepath.Base(f.AbsDestPath), nil
}

// register appends f unless a file with the same destination exists. A
// different source at the same destination is a collision.
func (r *Rewriter) register(f File, files FileRegistry) *MarkerError {
	r.mu.Lock()
	defer r.mu.Unlock()

	for existing := range files.All() {
		if filepath.Clean(existing.AbsDestPath) != f.AbsDestPath {
			continue
		}
		if filepath.Clean(existing.AbsSrcPath) != f.AbsSrcPath {
			return newMarkerError(ErrFileCollision, collisionMessage)
		}
		return nil
	}

	files.Append(f)
	return nil
}
