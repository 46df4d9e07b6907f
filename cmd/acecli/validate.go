package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openconfig/aceconf/internal/config"
	"github.com/openconfig/aceconf/internal/pipeline"
	"github.com/openconfig/aceconf/internal/registry"
)

// validateCmd drives a configuration instance document through every
// phase against a named model, the end-to-end "is this config valid"
// check a deployment pipeline runs before pushing a config out.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model> <instance-file>",
		Short: "run the full seven-phase pipeline against a model and an instance document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			reg := registry.New()
			reg.ModelDirs = cfg.ModelDirs

			s, ok := reg.ScannerByName(cfg.Format)
			if !ok {
				return fmt.Errorf("acecli: unknown format %q", cfg.Format)
			}
			doc, err := s.Open(args[1])
			if err != nil {
				return fmt.Errorf("acecli: could not read instance: %w", err)
			}

			p := pipeline.New(reg)
			p.Strict = cfg.Strict
			res := p.Run(args[0], doc)

			for _, d := range res.Diag {
				fmt.Fprintln(os.Stderr, d.String())
			}
			if res.Err != nil {
				return fmt.Errorf("acecli: %s", res.String())
			}
			fmt.Println(res.String())
			return nil
		},
	}
}
