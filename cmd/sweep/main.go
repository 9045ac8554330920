package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sweep/internal/config"
)

var version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Organize a directory's files into category subfolders",
	Long: `sweep relocates files into category subfolders (images, videos,
documents, audio, archives, code, others) based on their extension.

Run it once with 'sweep organize', or keep a directory tidy continuously
with 'sweep watch', which moves new files as they appear.

Categories can be customized with a rules file; see the 'rules' key in
$HOME/.config/sweep/config.yaml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(config.Init)
	config.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
