package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/alfred"
	flowerrors "nikiv.dev/flow/pkg/errors"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install <workflow-file>",
	Short: "Open a .alfredworkflow file so Alfred installs it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workflowFile := args[0]
		if _, err := os.Stat(workflowFile); err != nil {
			return flowerrors.NewWorkflowError("install", "workflow file not found: "+workflowFile)
		}

		if err := alfred.Install(workflowFile); err != nil {
			return err
		}
		fmt.Printf("Opening %s for installation...\n", workflowFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
