package group

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var groupRemoveUserCmd = &cobra.Command{
	Use:   "remove-user [GROUP NAME] [USER LOGIN]",
	Args:  cobra.ExactArgs(2),
	Short: "Remove a user from a group",
	Long:  `Remove a user from a group`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		group, err := functions.Client().GetGroupByName(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get group: %s", err)
		}
		if err := group.RemoveUserByLogin(ctx, args[1]); err != nil {
			logrus.Fatalf("Unable to remove user from group: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(groupRemoveUserCmd)
}
