package cmd

import (
	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/discovery"
)

// reposCmd represents the repos command
var reposCmd = &cobra.Command{
	Use:   "repos [query]",
	Short: "Search git repositories under the repos root (owner/repo layout)",
	Long: `Search a two-level owner/repo tree (default ~/repos) and print Alfred
Script Filter JSON. Exactly two directory levels are examined; results
display as "owner/repo".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		root, _ := cmd.Flags().GetString("root")
		refresh, _ := cmd.Flags().GetBool("refresh")
		return runSearch(query, root, discovery.Structured, refresh)
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	addSearchFlags(reposCmd.Flags())
}
