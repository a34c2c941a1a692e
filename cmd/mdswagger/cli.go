package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdswagger/internal/config"
)

// defaultConfigName is loaded from the working directory when --config is not set.
const defaultConfigName = "mdswagger"

// Sentinel errors for the CLI.
var (
	ErrNoCommand      = errors.New("no command specified")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrReadMarkdown   = errors.New("failed to read markdown file")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrMarkerErrors   = errors.New("unresolved swagger markers")
)

// run dispatches args (without the program name) to a command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoCommand
	}

	var err error
	switch args[0] {
	case "build":
		err = runBuild(ctx, args[1:], env)
	case "render":
		err = runRender(ctx, args[1:], env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdswagger %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(args[1:], env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

// runHelp prints help for a command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}
	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "render":
		printRenderUsage(env.Stdout)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}

// loadConfig loads the named config, or mdswagger.yml/.yaml from the working
// directory when present, or the defaults.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}
	cfg, err := config.LoadConfig(defaultConfigName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// usageError wraps flag parsing problems so they map to the usage exit code.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
