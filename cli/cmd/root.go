package cmd

import (
	"os"

	"github.com/schubergphilis/oktalib/cli/cmd/app"
	"github.com/schubergphilis/oktalib/cli/cmd/commons"
	contextCmd "github.com/schubergphilis/oktalib/cli/cmd/context"
	"github.com/schubergphilis/oktalib/cli/cmd/group"
	"github.com/schubergphilis/oktalib/cli/cmd/user"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "oktactl",
	Short: "CLI for managing Okta groups, users and applications",
	Long:  `CLI for managing Okta groups, users and applications`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// GetRoot returns the root of all subcommands
func GetRoot() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&commons.OutputFormat, "output", "o", "", "Output format (Enum:- json)")

	rootCmd.AddCommand(group.GetRoot())
	rootCmd.AddCommand(user.GetRoot())
	rootCmd.AddCommand(app.GetRoot())
	rootCmd.AddCommand(contextCmd.GetRoot())
}
