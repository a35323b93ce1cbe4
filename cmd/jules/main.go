package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	outputFlag string
	verbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "jules",
		Level:  log.WarnLevel,
	})

	rootCmd = &cobra.Command{
		Use:   "jules",
		Short: "Jules API helpers",
		Long: `jules wraps the Jules REST API: list sources, manage sessions and
activities, and report on sessions that look like recurring schedules.

The API key is read from JULES_API_KEY, which may be set in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: json or yaml (schedules also: text)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
