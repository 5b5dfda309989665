package app

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appAssignGroupCmd = &cobra.Command{
	Use:   "assign-group [LABEL] [GROUP NAME]",
	Args:  cobra.ExactArgs(2),
	Short: "Assign a group to an application",
	Long:  `Assign a group to an application`,
	Run: func(cmd *cobra.Command, args []string) {
		err := functions.Client().AssignGroupToApplication(context.Background(), args[0], args[1])
		if err != nil {
			logrus.Fatalf("Unable to assign group to application: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(appAssignGroupCmd)
}
