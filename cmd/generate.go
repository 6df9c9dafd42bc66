package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nikiv.dev/flow/pkg/alfred"
	flowerrors "nikiv.dev/flow/pkg/errors"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the workflow info.plist",
	Long: `Generate the workflow info.plist wiring two Script Filters (code and
repos keywords) to open-file actions, plus external triggers so other
workflows can invoke them. Object UIDs are freshly generated on each
run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		doc := buildInfoPlist(cfg.Workflow.BundleID)

		if output == "-" {
			fmt.Print(doc)
			return nil
		}
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			return flowerrors.Wrap(err, "failed to write info.plist")
		}
		fmt.Printf("Wrote %s\n", output)
		return nil
	},
}

// buildInfoPlist assembles the workflow canvas: a Script Filter and an
// external trigger per search command, each feeding one open action.
func buildInfoPlist(bundleID string) string {
	codeFilter := alfred.NewScriptFilter("c")
	codeFilter.Title = "Search code"
	codeFilter.Subtitle = "Open a repository under ~/code"
	codeFilter.Script = `./flow code "$1"`

	reposFilter := alfred.NewScriptFilter("r")
	reposFilter.Title = "Search repos"
	reposFilter.Subtitle = "Open a repository under ~/repos"
	reposFilter.Script = `./flow repos "$1"`

	codeTrigger := alfred.NewExternalTrigger("code")
	reposTrigger := alfred.NewExternalTrigger("repos")

	openAction := alfred.NewOpenFileAction()

	plist := alfred.InfoPlist{
		BundleID:    bundleID,
		Name:        "Flow",
		CreatedBy:   "flow",
		Description: "Search and open local git repositories",
		Objects: []alfred.Object{
			codeFilter,
			reposFilter,
			codeTrigger,
			reposTrigger,
			openAction,
		},
		Connections: []alfred.Connection{
			{SourceUID: codeFilter.UID(), DestUID: openAction.UID()},
			{SourceUID: reposFilter.UID(), DestUID: openAction.UID()},
			{SourceUID: codeTrigger.UID(), DestUID: codeFilter.UID()},
			{SourceUID: reposTrigger.UID(), DestUID: reposFilter.UID()},
		},
		Positions: []alfred.UIPosition{
			{UID: codeTrigger.UID(), X: 60, Y: 60},
			{UID: reposTrigger.UID(), X: 60, Y: 260},
			{UID: codeFilter.UID(), X: 280, Y: 60},
			{UID: reposFilter.UID(), X: 280, Y: 260},
			{UID: openAction.UID(), X: 520, Y: 160},
		},
	}
	return plist.Render()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "info.plist", "output path, or - for stdout")
}
