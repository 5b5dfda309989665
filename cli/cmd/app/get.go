package app

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appGetCmd = &cobra.Command{
	Use:   "get [LABEL]",
	Args:  cobra.ExactArgs(1),
	Short: "Get an application by label",
	Long:  `Get an application by label`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := functions.Client().GetApplicationByLabel(context.Background(), args[0])
		if err != nil {
			logrus.Fatalf("Unable to get application: %s", err)
		}
		functions.PrettyPrint(app)
	},
}

func init() {
	rootCmd.AddCommand(appGetCmd)
}
