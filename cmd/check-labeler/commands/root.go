// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-15

package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "check-labeler",
	Short: "Sync an issue label with a checkbox in the pull request description",
	Long: `check-labeler scans a pull request's commits for "Issue #N" references,
reads a checkbox from the pull request description and adds or removes a
label on every referenced issue so that it matches the checkbox.

It is designed to run as a GitHub Action step but can be run locally
against a saved event payload.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose && os.Getenv("RUNNER_DEBUG") != "1" {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: .github/check-labeler.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
