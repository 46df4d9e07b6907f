package main

import (
	"fmt"
	"strings"

	"github.com/pborman/getopt"
	"github.com/spf13/cobra"
)

// legacyPathsCmd accepts goyang-style single-dash flags after "--" (e.g.
// `acecli legacy-paths -- -path a,b -path c -format json`) for migration
// scripts still invoking the old flag convention, the same -path/-format
// flag pair yang.go registers on its own getopt.Set. It prints the
// combined directory list, each -path value split on commas, in the
// order given and with duplicates kept.
func legacyPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legacy-paths -- [-path DIR[,DIR...]]... [-format FORMAT]",
		Short: "parse goyang-style -path/-format flags from a legacy invocation",
		RunE: func(cmd *cobra.Command, args []string) error {
			set := getopt.New()
			var paths []string
			format := "json"
			set.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to search path", "DIR[,DIR...]")
			set.StringVarLong(&format, "format", 0, "format to display", "FORMAT")
			if err := set.Getopt(append([]string{"legacy-paths"}, args...), nil); err != nil {
				return fmt.Errorf("acecli: legacy flag parse error: %w", err)
			}

			var dirs []string
			for _, p := range paths {
				dirs = append(dirs, strings.Split(p, ",")...)
			}
			fmt.Printf("model-dirs: %s\n", strings.Join(dirs, ", "))
			fmt.Printf("format: %s\n", format)
			return nil
		},
	}
}
