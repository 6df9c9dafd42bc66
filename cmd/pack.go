package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/alfred"
	flowerrors "nikiv.dev/flow/pkg/errors"
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [workflow-dir]",
	Short: "Zip a workflow directory into a .alfredworkflow file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		workflowDir := cfg.Workflow.Dir
		if len(args) > 0 {
			workflowDir = args[0]
		}
		if !isDir(workflowDir) {
			return flowerrors.NewWorkflowError("pack", "workflow directory not found: "+workflowDir)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = "Flow-Workflow.alfredworkflow"
		}

		if err := alfred.Pack(workflowDir, output); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringP("output", "o", "", "output file path (default Flow-Workflow.alfredworkflow)")
}
