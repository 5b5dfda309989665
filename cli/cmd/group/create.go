package group

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var description string

var groupCreateCmd = &cobra.Command{
	Use:   "create [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "Create a group",
	Long:  `Create a group`,
	Run: func(cmd *cobra.Command, args []string) {
		group, err := functions.Client().CreateGroup(context.Background(), args[0], description)
		if err != nil {
			logrus.Fatalf("Unable to create group: %s", err)
		}
		functions.PrettyPrint(group)
	},
}

func init() {
	groupCreateCmd.Flags().StringVar(&description, "description", "", "Description of the group")
	rootCmd.AddCommand(groupCreateCmd)
}
