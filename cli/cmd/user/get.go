package user

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var userGetCmd = &cobra.Command{
	Use:   "get [USER LOGIN]",
	Args:  cobra.ExactArgs(1),
	Short: "Get a user by login",
	Long:  `Get a user by login`,
	Run: func(cmd *cobra.Command, args []string) {
		user, err := functions.Client().GetUserByLogin(context.Background(), args[0])
		if err != nil {
			logrus.Fatalf("Unable to get user: %s", err)
		}
		functions.PrettyPrint(user)
	},
}

func init() {
	rootCmd.AddCommand(userGetCmd)
}
