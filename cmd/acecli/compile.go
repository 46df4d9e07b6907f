package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openconfig/aceconf/internal/config"
	"github.com/openconfig/aceconf/internal/pipeline"
	"github.com/openconfig/aceconf/internal/registry"
)

// compileCmd runs only the model-side phases (check_model, flatten_model,
// validate_model) against a named model, the "does this schema even
// parse" smoke test a CI job runs before any instance exists.
func compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <model>",
		Short: "run check_model/flatten_model/validate_model against a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			reg := registry.New()
			reg.ModelDirs = cfg.ModelDirs

			p := pipeline.New(reg)
			_, reached, err := p.CheckAndLoadModel(args[0])
			if err != nil {
				return fmt.Errorf("acecli: %s failed at %s: %w", args[0], reached, err)
			}
			fmt.Printf("%s: ok (%s)\n", args[0], reached)
			return nil
		},
	}
}
