package group

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var groupAddUserCmd = &cobra.Command{
	Use:   "add-user [GROUP NAME] [USER LOGIN]",
	Args:  cobra.ExactArgs(2),
	Short: "Add a user to a group",
	Long:  `Add a user to a group`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		group, err := functions.Client().GetGroupByName(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get group: %s", err)
		}
		if err := group.AddUserByLogin(ctx, args[1]); err != nil {
			logrus.Fatalf("Unable to add user to group: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(groupAddUserCmd)
}
