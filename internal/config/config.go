// Package config loads the site build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	mdswagger "github.com/alnah/go-mdswagger"
	"github.com/alnah/go-mdswagger/internal/fileutil"
	"github.com/alnah/go-mdswagger/internal/hints"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidDirs     = errors.New("invalid docs/site directories")
)

// osFs is where config files are searched.
var osFs = afero.NewOsFs()

// Field length limits.
const (
	MaxSiteNameLength = 200
	MaxURLLength      = 2048 // Browser limit
	MaxPathLength     = 4096
	MaxInputSize      = 1 << 20 // 1MB of YAML
)

// Defaults mirror the usual documentation layout.
const (
	DefaultDocsDir = "docs"
	DefaultSiteDir = "site"
)

// Config holds the site build configuration.
type Config struct {
	SiteName        string           `yaml:"site_name"`
	DocsDir         string           `yaml:"docs_dir"`         // Relative to the config file (default: "docs")
	SiteDir         string           `yaml:"site_dir"`         // Relative to the config file (default: "site")
	ExtraJavaScript []any            `yaml:"extra_javascript"` // Strings or {path: ...} entries
	ExtraCSS        []any            `yaml:"extra_css"`
	Swagger         mdswagger.Config `yaml:"swagger"`

	// BaseDir anchors relative directories; set by LoadConfig.
	BaseDir string `yaml:"-"`

	raw map[string]any
}

// Compile-time interface implementation check.
var _ mdswagger.BuildConfig = (*Config)(nil)

// Lookup implements mdswagger.BuildConfig over every key of the file,
// including keys this package does not model.
func (c *Config) Lookup(key string) (any, bool) {
	switch key {
	case mdswagger.ExtraJavaScriptKey:
		return c.ExtraJavaScript, c.ExtraJavaScript != nil
	case mdswagger.ExtraCSSKey:
		return c.ExtraCSS, c.ExtraCSS != nil
	}
	v, ok := c.raw[key]
	return v, ok
}

// DocsPath returns the absolute docs directory.
func (c *Config) DocsPath() (string, error) {
	return c.resolve(c.DocsDir)
}

// SitePath returns the absolute output directory.
func (c *Config) SitePath() (string, error) {
	return c.resolve(c.SiteDir)
}

func (c *Config) resolve(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.BaseDir, dir)
	}
	return filepath.Abs(dir)
}

// Validate checks field lengths and directory layout.
func (c *Config) Validate() error {
	if err := validateFieldLength("site_name", c.SiteName, MaxSiteNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("docs_dir", c.DocsDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site_dir", c.SiteDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateAsset("swagger.javascript", c.Swagger.JavaScript); err != nil {
		return err
	}
	if err := validateAsset("swagger.css", c.Swagger.CSS); err != nil {
		return err
	}

	docs, err := c.DocsPath()
	if err != nil {
		return fmt.Errorf("%w: docs_dir: %v", ErrInvalidDirs, err)
	}
	site, err := c.SitePath()
	if err != nil {
		return fmt.Errorf("%w: site_dir: %v", ErrInvalidDirs, err)
	}
	if docs == site {
		return fmt.Errorf("%w: docs_dir and site_dir are both %s", ErrInvalidDirs, docs)
	}
	if rel, err := filepath.Rel(docs, site); err == nil && !strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%w: site_dir %s is inside docs_dir %s", ErrInvalidDirs, site, docs)
	}
	return nil
}

// validateAsset limits a viewer asset by URL or path length.
func validateAsset(fieldName, value string) error {
	if fileutil.IsURL(value) {
		return validateFieldLength(fieldName, value, MaxURLLength)
	}
	return validateFieldLength(fieldName, value, MaxPathLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		DocsDir: DefaultDocsDir,
		SiteDir: DefaultSiteDir,
		BaseDir: ".",
		raw:     map[string]any{},
	}
}

// Parse decodes YAML configuration. Relative directories are anchored at baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: input is %d bytes (max %d)", ErrConfigParse, len(data), MaxInputSize)
	}

	cfg := DefaultConfig()
	cfg.BaseDir = baseDir
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := yaml.Unmarshal(data, &cfg.raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.raw == nil {
		cfg.raw = map[string]any{}
	}
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = DefaultSiteDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) && !hasYAMLExt(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data, filepath.Dir(configPath))
}

func hasYAMLExt(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdswagger/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(osFs, localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdswagger", name+ext)
			if fileutil.FileExists(osFs, userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}
