package user

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var userDeleteCmd = &cobra.Command{
	Use:   "delete [USER LOGIN]",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a user",
	Long:  `Delete a user`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		user, err := functions.Client().GetUserByLogin(ctx, args[0])
		if err != nil {
			logrus.Fatalf("Unable to get user: %s", err)
		}
		if err := user.Delete(ctx); err != nil {
			logrus.Fatalf("Unable to delete user: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(userDeleteCmd)
}
