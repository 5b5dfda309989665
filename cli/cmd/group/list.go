package group

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var groupListCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List all groups",
	Long:  `List all groups`,
	Run: func(cmd *cobra.Command, args []string) {
		groups, err := functions.Client().Groups(context.Background())
		if err != nil {
			logrus.Fatalf("Unable to list groups: %s", err)
		}
		switch commons.OutputFormat {
		case commons.JsonOutput:
			functions.PrettyPrint(groups)
		default:
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Type", "Description"})
			for _, g := range groups {
				table.Append([]string{g.ID, g.Profile.Name, g.Type, g.Profile.Description})
			}
			table.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(groupListCmd)
}
