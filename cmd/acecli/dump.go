package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openconfig/aceconf/internal/config"
	"github.com/openconfig/aceconf/internal/registry"
	"github.com/openconfig/aceconf/internal/scanner"
)

// dumpCmd reads a document with one scanner and re-renders it with
// another, letting an operator convert a config between json/yaml/toml
// without touching a model at all.
func dumpCmd() *cobra.Command {
	var toFormat string
	var compact bool

	c := &cobra.Command{
		Use:   "dump <file>",
		Short: "read a document and re-render it in another scanner format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Load(cmd)
			if err != nil {
				return err
			}
			reg := registry.New()

			in, ok := reg.ScannerForFile(args[0])
			if !ok {
				return fmt.Errorf("acecli: no scanner registered for %s", args[0])
			}
			doc, err := in.Open(args[0])
			if err != nil {
				return fmt.Errorf("acecli: could not read %s: %w", args[0], err)
			}

			out, ok := reg.ScannerByName(toFormat)
			if !ok {
				return fmt.Errorf("acecli: unknown output format %q", toFormat)
			}
			layout := scanner.Default
			if compact {
				layout = scanner.Compact
			}
			return out.Dump(doc, layout, os.Stdout)
		},
	}
	c.Flags().StringVar(&toFormat, "to", "json", "output format: json, yaml, or toml")
	c.Flags().BoolVar(&compact, "compact", false, "render without indentation where the format supports it")
	return c
}
