package mdswagger

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Default Swagger UI distribution served from unpkg.
const (
	DefaultJavaScript = "https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"
	DefaultCSS        = "https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"
)

// Bundle basenames recognised in legacy extra_javascript / extra_css lists.
const (
	legacyBundleName     = "swagger-ui-bundle.js"
	legacyStylesheetName = "swagger-ui.css"
)

// Legacy build configuration keys.
const (
	ExtraJavaScriptKey = "extra_javascript"
	ExtraCSSKey        = "extra_css"
)

// Config holds the plugin options as declared in the build configuration.
type Config struct {
	JavaScript              string `yaml:"javascript"`                // Viewer bundle URL (empty = default)
	CSS                     string `yaml:"css"`                       // Viewer stylesheet URL (empty = default)
	AllowArbitraryLocations bool   `yaml:"allow_arbitrary_locations"` // Permit paths outside the page directory
}

// Settings are the effective options used while rewriting pages.
type Settings struct {
	JavaScript              string
	CSS                     string
	AllowArbitraryLocations bool
}

// BuildConfig exposes arbitrary keys of the host build configuration.
type BuildConfig interface {
	Lookup(key string) (any, bool)
}

// MapConfig is a BuildConfig backed by a map.
type MapConfig map[string]any

// Lookup implements BuildConfig.
func (m MapConfig) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// ResolveConfig determines the effective settings for a build. It runs once,
// before any page is processed.
//
// Explicit options win. Otherwise an extra_javascript / extra_css entry named
// swagger-ui-bundle.js / swagger-ui.css is adopted with a deprecation warning.
// Otherwise the unpkg defaults apply. build and logger may be nil.
func ResolveConfig(cfg Config, build BuildConfig, logger *zap.SugaredLogger) Settings {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := Settings{
		JavaScript:              cfg.JavaScript,
		CSS:                     cfg.CSS,
		AllowArbitraryLocations: cfg.AllowArbitraryLocations,
	}

	if s.JavaScript == "" {
		s.JavaScript = legacyAsset(build, ExtraJavaScriptKey, legacyBundleName, "javascript", logger)
	}
	if s.JavaScript == "" {
		s.JavaScript = DefaultJavaScript
	}

	if s.CSS == "" {
		s.CSS = legacyAsset(build, ExtraCSSKey, legacyStylesheetName, "css", logger)
	}
	if s.CSS == "" {
		s.CSS = DefaultCSS
	}

	return s
}

// legacyAsset returns the first entry of the build list key whose basename is
// name, warning that the option should be used instead.
func legacyAsset(build BuildConfig, key, name, option string, logger *zap.SugaredLogger) string {
	for _, entry := range assetList(build, key) {
		if path.Base(strings.ReplaceAll(entry, `\`, "/")) != name {
			continue
		}
		logger.Warnw(
			fmt.Sprintf("Please use the %s configuration option for the swagger plugin instead of %s.", option, key),
			"option", option,
			"key", key,
			"adopted", entry,
		)
		return entry
	}
	return ""
}

// assetList normalises a heterogeneous list of asset entries to strings.
func assetList(build BuildConfig, key string) []string {
	if build == nil {
		return nil
	}
	raw, ok := build.Lookup(key)
	if !ok || raw == nil {
		return nil
	}

	switch list := raw.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, entry := range list {
			if s := assetString(entry); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := assetString(raw); s != "" {
			return []string{s}
		}
		return nil
	}
}

// assetString converts one asset entry to its string form. Entries are plain
// strings, values with a String method, or maps carrying a "path" key.
func assetString(entry any) string {
	switch v := entry.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case map[string]any:
		if p, ok := v["path"]; ok {
			return assetString(p)
		}
		return ""
	case map[string]string:
		return v["path"]
	default:
		return fmt.Sprint(v)
	}
}
