package cmd

import (
	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/discovery"
)

// codeCmd represents the code command
var codeCmd = &cobra.Command{
	Use:   "code [query]",
	Short: "Search git repositories under the code root",
	Long: `Search git repositories nested at any depth under the code root
(default ~/code) and print Alfred Script Filter JSON.

Repositories are found by their .git marker. Hidden directories and
dependency or build directories such as node_modules and target are
never descended into. Results are ranked against the query; with no
query they are listed alphabetically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		root, _ := cmd.Flags().GetString("root")
		refresh, _ := cmd.Flags().GetBool("refresh")
		return runSearch(query, root, discovery.Unbounded, refresh)
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
	addSearchFlags(codeCmd.Flags())
}
