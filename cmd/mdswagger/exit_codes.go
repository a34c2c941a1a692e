package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdswagger/internal/config"
	"github.com/alnah/go-mdswagger/internal/pipeline"
	"github.com/alnah/go-mdswagger/internal/site"
)

// Exit codes for mdswagger CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitMarkers = 4 // --strict and a marker could not be resolved
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrMarkerErrors) {
		return ExitMarkers
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, site.ErrNoPages) ||
		errors.Is(err, site.ErrReadPage) ||
		errors.Is(err, site.ErrWritePage) ||
		errors.Is(err, site.ErrCopyAsset) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidDirs) ||
		errors.Is(err, pipeline.ErrFrontMatter) {
		return ExitUsage
	}

	return ExitGeneral
}
