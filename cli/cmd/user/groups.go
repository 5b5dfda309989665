package user

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var userGroupsCmd = &cobra.Command{
	Use:   "groups [USER LOGIN]",
	Args:  cobra.ExactArgs(1),
	Short: "List the groups of a user",
	Long:  `List the groups of a user`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		user, err := functions.Client().GetUserByLogin(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get user: %s", err)
		}
		groups, err := user.Groups(ctx)
		if err != nil {
			logrus.Fatalf("Unable to list groups of user: %s", err)
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
	rootCmd.AddCommand(userGroupsCmd)
}
