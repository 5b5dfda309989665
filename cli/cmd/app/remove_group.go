package app

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appRemoveGroupCmd = &cobra.Command{
	Use:   "remove-group [LABEL] [GROUP NAME]",
	Args:  cobra.ExactArgs(2),
	Short: "Remove a group from an application",
	Long:  `Remove a group from an application`,
	Run: func(cmd *cobra.Command, args []string) {
		err := functions.Client().RemoveGroupFromApplication(context.Background(), args[0], args[1])
		if err != nil {
			logrus.Fatalf("Unable to remove group from application: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(appRemoveGroupCmd)
}
