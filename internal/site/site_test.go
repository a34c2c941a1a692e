package site_test

// Notes:
// - Builds run against afero.MemMapFs rooted at /project.
// - Ids are only compared within one page: pages render concurrently, so the
//   order in which pages draw ids is not fixed.

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/afero"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/site"
)

var (
	docsDir = filepath.FromSlash("/project/docs")
	siteDir = filepath.FromSlash("/project/site")
	idRe    = regexp.MustCompile(`<div id="(swagger-ui-\d+)"></div>`)
)

func writeFiles(t *testing.T, fsys afero.Fs, files map[string]string) {
	t.Helper()
	for p, content := range files {
		if err := afero.WriteFile(fsys, filepath.FromSlash(p), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, fsys afero.Fs, p string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, filepath.FromSlash(p))
	if err != nil {
		t.Fatalf("reading %s: %v", p, err)
	}
	return string(data)
}

func newBuilder(fsys afero.Fs, cfg mdswagger.Config) *site.Builder {
	return site.NewBuilder(site.Options{
		DocsDir:  docsDir,
		SiteDir:  siteDir,
		Settings: mdswagger.ResolveConfig(cfg, nil, nil),
		Workers:  4,
		Fs:       fsys,
	})
}

// ---------------------------------------------------------------------------
// TestBuild
// ---------------------------------------------------------------------------

func TestBuild(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/project/docs/index.md":          "---\ntitle: Home\n---\n# Home\n\n!!swagger openapi.yml!!\n",
		"/project/docs/openapi.yml":       "openapi: 3.0.0\n",
		"/project/docs/api/orders.md":     "# Orders\n\n!!swagger orders.json!!\n\n!!swagger-http https://example.com/users.json!!\n",
		"/project/docs/api/orders.json":   "{}",
		"/project/docs/api/unused.yml":    "openapi: 3.0.0\n",
		"/project/docs/broken.md":         "!!swagger missing.yml!!\n",
		"/project/docs/.hidden/secret.md": "!!swagger x.yml!!",
		"/project/docs/assets/readme.txt": "not markdown",
		"/project/docs/plain.markdown":    "no markers",
	})

	b := newBuilder(fsys, mdswagger.Config{})
	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if report.Pages != 4 {
		t.Errorf("Pages = %d, want 4", report.Pages)
	}
	if report.Fragments != 3 {
		t.Errorf("Fragments = %d, want 3", report.Fragments)
	}
	if report.Assets != 2 {
		t.Errorf("Assets = %d, want 2", report.Assets)
	}
	if len(report.MarkerErrors) != 1 || report.MarkerErrors[0].Page != "broken.md" ||
		!errors.Is(report.MarkerErrors[0].Err, mdswagger.ErrFileNotFound) {
		t.Errorf("MarkerErrors = %+v", report.MarkerErrors)
	}

	index := readFile(t, fsys, "/project/site/index.html")
	for _, want := range []string{
		"<title>Home</title>",
		"url: 'openapi.yml'",
		`href="` + mdswagger.DefaultCSS + `"`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q:\n%s", want, index)
		}
	}

	orders := readFile(t, fsys, "/project/site/api/orders.html")
	ids := idRe.FindAllStringSubmatch(orders, -1)
	if len(ids) != 2 || ids[0][1] == ids[1][1] {
		t.Errorf("orders.html ids = %v, want two distinct", ids)
	}
	if !strings.Contains(orders, "url: 'https://example.com/users.json'") {
		t.Errorf("orders.html missing remote url")
	}

	broken := readFile(t, fsys, "/project/site/broken.html")
	if !strings.Contains(broken, "!! SWAGGER ERROR: File missing.yml not found. !!") {
		t.Errorf("broken.html = %s", broken)
	}

	if got := readFile(t, fsys, "/project/site/openapi.yml"); got != "openapi: 3.0.0\n" {
		t.Errorf("copied openapi.yml = %q", got)
	}
	readFile(t, fsys, "/project/site/api/orders.json")

	for _, p := range []string{"/project/site/api/unused.yml", "/project/site/.hidden/secret.html", "/project/site/assets/readme.txt"} {
		if ok, _ := afero.Exists(fsys, filepath.FromSlash(p)); ok {
			t.Errorf("%s should not exist", p)
		}
	}
}

func TestBuild_ArbitraryLocation(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/project/docs/index.md":     "!!swagger ../specs/openapi.yml!!",
		"/project/specs/openapi.yml": "openapi: 3.1.0\n",
	})

	report, err := newBuilder(fsys, mdswagger.Config{AllowArbitraryLocations: true}).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if report.Assets != 1 || len(report.MarkerErrors) != 0 {
		t.Errorf("report = %+v", report)
	}
	if got := readFile(t, fsys, "/project/site/openapi.yml"); got != "openapi: 3.1.0\n" {
		t.Errorf("copied openapi.yml = %q", got)
	}
}

func TestBuild_CollisionAcrossPagesInSameDirectory(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/project/docs/a.md":       "!!swagger ../one/openapi.yml!!",
		"/project/docs/b.md":       "!!swagger ../two/openapi.yml!!",
		"/project/one/openapi.yml": "one",
		"/project/two/openapi.yml": "two",
	})

	report, err := newBuilder(fsys, mdswagger.Config{AllowArbitraryLocations: true}).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if report.Fragments != 1 || report.Assets != 1 {
		t.Errorf("Fragments = %d, Assets = %d, want 1/1", report.Fragments, report.Assets)
	}
	if len(report.MarkerErrors) != 1 || !errors.Is(report.MarkerErrors[0].Err, mdswagger.ErrFileCollision) {
		t.Errorf("MarkerErrors = %+v", report.MarkerErrors)
	}
}

func TestBuild_IDsContinueAcrossBuilds(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/project/docs/index.md": "!!swagger-http https://example.com/a.json!!",
	})

	b := newBuilder(fsys, mdswagger.Config{})
	for i, want := range []string{"swagger-ui-1", "swagger-ui-2"} {
		if _, err := b.Build(context.Background()); err != nil {
			t.Fatalf("Build() #%d error = %v", i, err)
		}
		if got := readFile(t, fsys, "/project/site/index.html"); !strings.Contains(got, `id="`+want+`"`) {
			t.Errorf("build #%d missing %s", i, want)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no pages", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeFiles(t, fsys, map[string]string{"/project/docs/openapi.yml": "x"})

		_, err := newBuilder(fsys, mdswagger.Config{}).Build(context.Background())
		if !errors.Is(err, site.ErrNoPages) {
			t.Errorf("Build() error = %v, want ErrNoPages", err)
		}
	})

	t.Run("missing docs dir", func(t *testing.T) {
		t.Parallel()

		_, err := newBuilder(afero.NewMemMapFs(), mdswagger.Config{}).Build(context.Background())
		if err == nil {
			t.Error("Build() expected error for missing docs dir")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		fsys := afero.NewMemMapFs()
		writeFiles(t, fsys, map[string]string{"/project/docs/index.md": "# x"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newBuilder(fsys, mdswagger.Config{}).Build(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Build() error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestOutputPath / TestDiscoverPages
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"index.md":                          "index.html",
		filepath.FromSlash("api/orders.md"): filepath.FromSlash("api/orders.html"),
		"notes.markdown":                    "notes.html",
	}
	for in, want := range tests {
		if got := site.OutputPath(in); got != want {
			t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDiscoverPages(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFiles(t, fsys, map[string]string{
		"/project/docs/z.md":        "",
		"/project/docs/a/b.MD":      "",
		"/project/docs/.git/c.md":   "",
		"/project/docs/openapi.yml": "",
	})

	got, err := site.DiscoverPages(fsys, docsDir)
	if err != nil {
		t.Fatalf("DiscoverPages() error = %v", err)
	}
	want := []string{filepath.FromSlash("a/b.MD"), "z.md"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("DiscoverPages() = %v, want %v", got, want)
	}
}
