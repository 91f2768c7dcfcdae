package main

import (
	"fmt"

	"tiffview/internal/catalog"
	"tiffview/internal/sources"
	"tiffview/internal/tiff"

	"github.com/spf13/cobra"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file|dir>...",
		Short: "Print size and contrast bounds without opening a window",
		Long: `Decode and analyze every file like the viewer does, then print one row
per file with its size, TIFF encoding, raw intensity range and the display
window that auto-contrast would apply.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(args)
		},
	}
}

func (a *app) inspect(args []string) error {
	paths, err := sources.Expand(args, a.cfg.Sources.Patterns)
	if err != nil {
		return err
	}

	decoder := tiff.NewDecoder()
	loader := catalog.NewLoader(decoder, catalog.NopUploader{})
	c, results, err := loader.Load(paths, true)

	headers := make(map[string]tiff.Header, len(results))
	for _, r := range results {
		if h, herr := decoder.Header(r.Path); herr == nil {
			headers[r.Path] = h
		}
	}
	if len(results) > 0 {
		fmt.Fprintln(a.stdout, renderSummary(results, headers))
	}
	if err != nil {
		return err
	}
	c.Close()
	return nil
}
