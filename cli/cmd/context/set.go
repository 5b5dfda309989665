package context

import (
	"log"

	"github.com/schubergphilis/oktalib/cli/config"
	"github.com/spf13/cobra"
)

var (
	host  string
	token string
)

var contextSetCmd = &cobra.Command{
	Use:   "set [NAME]",
	Args:  cobra.ExactArgs(1),
	Short: "Create a context or update an existing one",
	Long:  `Create a context or update an existing one`,
	Run: func(cmd *cobra.Command, args []string) {
		if host == "" || token == "" {
			cmd.Usage()
			log.Fatal("Both host and token are required")
		}
		config.SetContext(args[0], config.Context{
			Host:  host,
			Token: token,
		})
	},
}

func init() {
	contextSetCmd.Flags().StringVar(&host, "host", "", "Okta org URL, e.g. https://acme.okta.com")
	contextSetCmd.Flags().StringVar(&token, "token", "", "Okta API token")
	rootCmd.AddCommand(contextSetCmd)
}
