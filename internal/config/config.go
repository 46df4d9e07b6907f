// Package config loads acecli's run-time configuration the way
// gnmidiff/cmd/root.go loads its own: an optional config file read by
// viper, overridden by environment variables under the ACE_ prefix,
// overridden again by command-line flags that were set explicitly.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the resolved set of knobs a pipeline run needs beyond the
// model and instance paths given on the command line.
type Config struct {
	// ModelDirs is the ordered list of directories searched for a named
	// model, mirroring MODEL_PATH / goyang's --path.
	ModelDirs []string
	// Strict makes check_instance treat an unexpected key as a hard
	// failure instead of a recorded diagnostic.
	Strict bool
	// Format picks the scanner used to read instance documents and to
	// render output ("json", "yaml", "toml").
	Format string
}

// Bind registers the flags every acecli subcommand shares and wires them
// through viper so ACE_MODEL_DIR, ACE_STRICT, ACE_FORMAT and a config
// file can supply them, following gnmidiff/cmd/root.go's --config_file +
// viper.AutomaticEnv() precedent.
func Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice("model-dir", nil, "directories to search for models, repeatable")
	cmd.PersistentFlags().Bool("strict", false, "treat unexpected instance keys as failures")
	cmd.PersistentFlags().String("format", "json", "scanner format: json, yaml, or toml")
	cmd.PersistentFlags().String("config-file", "", "path to a viper config file")

	viper.SetEnvPrefix("ACE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Load resolves a Config from cmd's bound flags, a config file if one
// was given, and the environment, in this override order (flags set on
// the command line win, then the environment, then the config file, then
// flag defaults) — viper's own
// precedence order, the same one gnmidiff relies on.
func Load(cmd *cobra.Command) (*Config, error) {
	if cfgFile, _ := cmd.Flags().GetString("config-file"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("aceconf: error reading config file: %w", err)
		}
	}
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("aceconf: error binding flags: %w", err)
	}

	c := &Config{
		ModelDirs: viper.GetStringSlice("model-dir"),
		Strict:    viper.GetBool("strict"),
		Format:    viper.GetString("format"),
	}
	if c.Format == "" {
		c.Format = "json"
	}
	return c, nil
}
