package group

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var groupDeleteCmd = &cobra.Command{
	Use:   "delete [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a group",
	Long:  `Delete a group`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := functions.Client().DeleteGroup(context.Background(), args[0]); err != nil {
			logrus.Fatalf("Unable to delete group: %s", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(groupDeleteCmd)
}
