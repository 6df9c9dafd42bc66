package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/config"
	flowerrors "nikiv.dev/flow/pkg/errors"
)

var cfgFile string
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow - Alfred workflow backend for repository search",
	Long: `Flow is the backend binary for an Alfred workflow that searches local
git repositories. The code and repos commands scan the filesystem, rank
results against the typed query, and print Script Filter JSON for Alfred
to display. The remaining commands manage the workflow itself: linking a
development copy into Alfred, packing it for distribution, and
generating its info.plist.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, flowerrors.FormatUserError(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/flow/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initConfig reads in config file and ENV variables if set, and routes
// debug logging to stderr so stdout stays reserved for Script Filter JSON.
func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		cobra.CheckErr(err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig returns the configuration derived from viper state.
func loadConfig() (*config.Config, error) {
	return config.Load()
}
