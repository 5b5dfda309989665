package app

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appGroupsCmd = &cobra.Command{
	Use:   "groups [LABEL]",
	Args:  cobra.ExactArgs(1),
	Short: "List the groups assigned to an application",
	Long:  `List the groups assigned to an application`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app, err := functions.Client().GetApplicationByLabel(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get application: %s", err)
		}
		groups, err := app.Groups(ctx)
		if err != nil {
			logrus.Fatalf("Unable to list groups of application: %s", err)
		}
		switch commons.OutputFormat {
		case commons.JsonOutput:
			functions.PrettyPrint(groups)
		default:
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Type"})
			for _, g := range groups {
				table.Append([]string{g.ID, g.Profile.Name, g.Type})
			}
			table.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(appGroupsCmd)
}
