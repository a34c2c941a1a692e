package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	workers int
	strict  bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common                  commonFlags
	output                  string
	dest                    string
	allowArbitraryLocations bool
	strict                  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel pages (0 = auto)")
	fs.BoolVar(&f.strict, "strict", false, "fail when a swagger marker cannot be resolved")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write Markdown to file instead of stdout")
	fs.StringVar(&f.dest, "dest", "", "directory the page is published to (default: next to input)")
	fs.BoolVar(&f.allowArbitraryLocations, "allow-arbitrary-locations", false, "allow swagger files outside the page directory")
	fs.BoolVar(&f.strict, "strict", false, "fail when a swagger marker cannot be resolved")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printRenderUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
