package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/alfred"
	flowerrors "nikiv.dev/flow/pkg/errors"
)

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link [workflow-dir]",
	Short: "Symlink a workflow directory into Alfred for development",
	Long: `Symlink a workflow directory into Alfred's workflows directory so
edits take effect without reinstalling. An existing symlink for the same
bundle id is replaced; a real directory in the way is an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		workflowDir := cfg.Workflow.Dir
		if len(args) > 0 {
			workflowDir = args[0]
		}
		bundleID, _ := cmd.Flags().GetString("bundle-id")
		if bundleID == "" {
			bundleID = cfg.Workflow.BundleID
		}

		abs, err := filepath.Abs(workflowDir)
		if err != nil {
			return flowerrors.Wrap(err, "failed to resolve workflow directory")
		}
		if !isDir(abs) {
			return flowerrors.NewWorkflowError("link", "workflow directory not found: "+abs)
		}

		dest, err := alfred.Link(abs, bundleID)
		if err != nil {
			return err
		}
		fmt.Printf("Linked %s -> %s\n", abs, dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
	linkCmd.Flags().String("bundle-id", "", "workflow bundle id (overrides config)")
}
