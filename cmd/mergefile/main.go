package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dusk-indust/mergefile/internal/merge"
)

// CLI flags and arguments parsed from the command line.
type cliFlags struct {
	Paths    []string         `arg:"" optional:"" name:"path" help:"Input files followed by the output file."`
	Header   string           `name:"header" help:"Description placed at the top of the document."`
	Format   string           `name:"format" placeholder:"xml|markdown" help:"Output format (default: markdown)."`
	Digest   bool             `name:"digest" help:"Attach a BLAKE3 digest to every embedded file."`
	Config   string           `name:"config" type:"path" help:"Defaults file (default: mergefile.yml in the working directory)."`
	Verbose  bool             `name:"verbose" short:"v" help:"Log every merged file, not only skipped ones."`
	ServeMCP bool             `name:"serve-mcp" help:"Run as an MCP server on stdio instead of merging."`
	Version  kong.VersionFlag `name:"version" help:"Print version and exit."`
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, merge.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	parser, err := kong.New(&flags,
		kong.Name("mergefile"),
		kong.Description("Merge several text files into one XML or Markdown document for review.\n\n"+
			"The last path is the output file; every other path is an input.\n\n"+
			"  mergefile main.go util.go data.csv bundle.md\n"+
			"  mergefile --format xml --header \"project sources\" src/*.go bundle.xml"),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", merge.ErrUsage, err)
	}

	if flags.ServeMCP {
		return runServe(flags, stderr)
	}
	return runMerge(flags, stdout, stderr)
}
