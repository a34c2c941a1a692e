// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"path/filepath"
	"strings"

	mdswagger "github.com/alnah/go-mdswagger"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/mdswagger/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/mdswagger.yml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/mdswagger/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoPages returns hints when the docs directory holds no Markdown.
func ForNoPages() string {
	return format("set docs_dir in mdswagger.yml; pages must end in .md or .markdown")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMarker returns the hint matching a swagger marker error, or "".
func ForMarker(err error) string {
	switch {
	case errors.Is(err, mdswagger.ErrArbitraryLocation):
		return format("set swagger.allow_arbitrary_locations: true or pass --allow-arbitrary-locations")
	case errors.Is(err, mdswagger.ErrFileNotFound):
		return format("paths are resolved from the directory of the page")
	case errors.Is(err, mdswagger.ErrFileCollision):
		return format("rename one of the files; both would be copied to the same place")
	case errors.Is(err, mdswagger.ErrUsage):
		return format("write !!swagger <file>!! or !!swagger-http <url>!!")
	}
	return ""
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
