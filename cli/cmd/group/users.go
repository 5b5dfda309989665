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

var groupUsersCmd = &cobra.Command{
	Use:   "users [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "List the members of a group",
	Long:  `List the members of a group`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		group, err := functions.Client().GetGroupByName(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get group: %s", err)
		}
		users, err := group.Users(ctx)
		if err != nil {
			logrus.Fatalf("Unable to list group members: %s", err)
		}
		switch commons.OutputFormat {
		case commons.JsonOutput:
			functions.PrettyPrint(users)
		default:
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Login", "Name", "Status"})
			for _, u := range users {
				table.Append([]string{u.ID, u.Profile.Login, u.Profile.FirstName + " " + u.Profile.LastName, u.Status})
			}
			table.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(groupUsersCmd)
}
