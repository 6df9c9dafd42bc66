package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/alfred"
)

// unlinkCmd represents the unlink command
var unlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the workflow symlink from Alfred",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		bundleID, _ := cmd.Flags().GetString("bundle-id")
		if bundleID == "" {
			bundleID = cfg.Workflow.BundleID
		}

		if err := alfred.Unlink(bundleID); err != nil {
			return err
		}
		fmt.Printf("Unlinked %s\n", bundleID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unlinkCmd)
	unlinkCmd.Flags().String("bundle-id", "", "workflow bundle id (overrides config)")
}
