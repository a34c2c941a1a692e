// Package mdswagger embeds Swagger UI viewers into Markdown pages.
//
// # Quick Start
//
// Resolve the plugin configuration once per build, then rewrite each page:
//
//	settings := mdswagger.ResolveConfig(mdswagger.Config{}, nil, logger)
//	rw := mdswagger.NewRewriter(settings)
//	files := mdswagger.NewFiles()
//
//	out := rw.OnPageMarkdown("!!swagger openapi.yml!!", mdswagger.Page{
//	    AbsSrcPath:  "/docs/api/index.md",
//	    AbsDestPath: "/site/api/index.html",
//	}, files)
//
// The marker is replaced with a fragment that loads the Swagger UI bundle at
// page-view time, and openapi.yml is registered in files for copy next to the
// rendered page.
//
// # Markers
//
//	!!swagger <file>!!       local file next to the Markdown document
//	!!swagger-http <url>!!   remote http(s) URL, used verbatim
//
// Local paths containing a directory separator are rejected unless
// Config.AllowArbitraryLocations is set. Problems never abort a build: the
// marker is replaced by an inline "!! SWAGGER ERROR: ... !!" message and the
// typed error is reported in Result.Errors.
//
// # Concurrency
//
// A Rewriter, a Files registry and an IDGenerator may be shared by goroutines
// processing different pages of the same build. Ids are never reused for the
// lifetime of the generator.
package mdswagger
