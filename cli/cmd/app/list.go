package app

import (
	"context"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var appListCmd = &cobra.Command{
	Use:   "list",
	Args:  cobra.NoArgs,
	Short: "List all applications",
	Long:  `List all applications`,
	Run: func(cmd *cobra.Command, args []string) {
		apps, err := functions.Client().Applications(context.Background())
		if err != nil {
			logrus.Fatalf("Unable to list applications: %s", err)
		}
		switch commons.OutputFormat {
		case commons.JsonOutput:
			functions.PrettyPrint(apps)
		default:
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Label", "Name", "Status", "Sign-On Mode"})
			for _, a := range apps {
				table.Append([]string{a.ID, a.Label, a.Name, a.Status, a.SignOnMode})
			}
			table.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(appListCmd)
}
