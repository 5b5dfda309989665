package user

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/schubergphilis/oktalib/okta"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var query string

var userListCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List all users",
	Long:  `List all users`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var err error
		users := []*okta.User{}
		if query != "" {
			users, err = functions.Client().SearchUsers(ctx, query)
		} else {
			users, err = functions.Client().Users(ctx)
		}
		if err != nil {
			logrus.Fatalf("Unable to list users: %s", err)
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
	userListCmd.Flags().StringVarP(&query, "query", "q", "", "Filter users by name or login prefix")
	rootCmd.AddCommand(userListCmd)
}
