// Command acecli is the reference command-line driver for the
// configuration-schema compiler/validator core: it loads a model, runs
// it through the model-side phases, and optionally drives a
// configuration instance through the remaining instance-side phases.
// Subcommand layout and config-file/env wiring follow
// gnmidiff/cmd/root.go's cobra+viper root command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openconfig/aceconf/internal/config"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "acecli",
		Short: "acecli compiles and validates configuration schemas and instances",
	}
	config.Bind(root)
	root.AddCommand(compileCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(dumpCmd())
	root.AddCommand(legacyPathsCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
