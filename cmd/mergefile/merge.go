package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/dusk-indust/mergefile/internal/config"
	"github.com/dusk-indust/mergefile/internal/logging"
	"github.com/dusk-indust/mergefile/internal/merge"
)

func runMerge(flags cliFlags, stdout, stderr io.Writer) error {
	if len(flags.Paths) < 2 {
		return fmt.Errorf("%w: need at least one input file and an output file", merge.ErrUsage)
	}
	if flags.Format != "" {
		if _, err := merge.ParseFormat(flags.Format); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(flags.Config)
	if err != nil {
		return err
	}

	req, err := buildRequest(flags, cfg)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, flags.Verbose || cfg.Verbose)
	res, err := merge.Merge(req, merge.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Merged %d files into %s (format: %s, %s)\n",
		res.Processed, res.Output, res.Format, humanize.Bytes(uint64(res.Bytes)))
	return nil
}

// loadConfig reads the explicit defaults file when given, otherwise the
// optional mergefile.yml in the working directory.
func loadConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildRequest splits the positional paths and layers flags over config
// defaults.
func buildRequest(flags cliFlags, cfg *config.ProjectConfig) (merge.Request, error) {
	name := flags.Format
	if name == "" {
		name = cfg.Format
	}
	if name == "" {
		name = merge.FormatMarkdown.String()
	}
	format, err := merge.ParseFormat(name)
	if err != nil {
		return merge.Request{}, err
	}

	header := flags.Header
	if header == "" {
		header = cfg.Header
	}

	n := len(flags.Paths)
	return merge.Request{
		Inputs: flags.Paths[:n-1],
		Output: flags.Paths[n-1],
		Header: header,
		Format: format,
		Digest: flags.Digest || cfg.Digest,
	}, nil
}
