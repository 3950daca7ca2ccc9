package main

import (
	"fmt"
	"os"

	"github.com/consol-monitoring/nagplug"
	"github.com/consol-monitoring/nagplug/checks"
	"github.com/spf13/cobra"
)

// Version contains the bundle version
// compile passing -ldflags "-X main.Version=<version>" to set it.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "checkplug [command]",
	Short: "Bundled Nagios compatible check plugins.",
	Long: `checkplug bundles the built in check plugins of the nagplug library
into a single binary. Every subcommand behaves exactly like the
standalone plugin of the same name and takes the same flags.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintf(os.Stderr, "checkplug called without arguments, see --help for usage.\n")
		os.Exit(nagplug.ExitCodeUnknown)
	},
}

func init() {
	rootCmd.DisableAutoGenTag = true
	rootCmd.DisableSuggestions = true

	for _, entry := range checks.Available {
		entry := entry
		rootCmd.AddCommand(&cobra.Command{
			Use:   entry.Name,
			Short: entry.Description,
			// flags are owned by the plugin, pass them through untouched
			DisableFlagParsing: true,
			Run: func(_ *cobra.Command, args []string) {
				plugin := nagplug.NewPlugin(entry.Name, Version)
				plugin.RunArgs(entry.New(plugin), args)
			},
		})
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(nagplug.ExitCodeUnknown)
	}
}
