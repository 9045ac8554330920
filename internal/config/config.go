// Package config loads sweep's configuration from file, environment,
// and defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sweep/internal/category"
)

var cfgFile string

// Config is the resolved configuration for one invocation.
type Config struct {
	// SettleDelay is the wait inserted before a newly created file is
	// moved by the watch pipeline.
	SettleDelay time.Duration

	// LogFile, when set, receives rotating watch-mode activity logs.
	LogFile string

	// Rules is an optional path to a category rules YAML file.
	Rules string
}

// AddGlobalFlags registers the persistent flags shared by all commands.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sweep/config.yaml)")
}

// Init wires viper to the config file and environment. Called once by
// the root command before any subcommand runs. A missing config file is
// fine; defaults apply.
func Init() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "sweep"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SWEEP")

	viper.SetDefault("settle_delay", "1s")
	viper.SetDefault("log_file", "")
	viper.SetDefault("rules", "")

	_ = viper.ReadInConfig()
}

// Load returns the resolved configuration.
func Load() Config {
	return Config{
		SettleDelay: viper.GetDuration("settle_delay"),
		LogFile:     viper.GetString("log_file"),
		Rules:       viper.GetString("rules"),
	}
}

// Table resolves the category table: the rules file when configured,
// otherwise the built-in defaults.
func (c Config) Table() (category.Table, error) {
	if c.Rules == "" {
		return category.Default(), nil
	}
	return category.Load(c.Rules)
}
