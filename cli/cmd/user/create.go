package user

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/schubergphilis/oktalib/okta"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	firstName  string
	lastName   string
	email      string
	login      string
	password   string
	noActivate bool
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Args:  cobra.NoArgs,
	Short: "Create a user",
	Long:  `Create a user`,
	Run: func(cmd *cobra.Command, args []string) {
		if login == "" {
			login = email
		}
		activate := !noActivate
		user, err := functions.Client().CreateUser(context.Background(), okta.CreateUserInput{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Login:     login,
			Password:  password,
			Activate:  &activate,
		})
		if err != nil {
			logrus.Fatalf("Unable to create user: %s", err)
		}
		functions.PrettyPrint(user)
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&firstName, "first-name", "", "First name of the user")
	userCreateCmd.Flags().StringVar(&lastName, "last-name", "", "Last name of the user")
	userCreateCmd.Flags().StringVar(&email, "email", "", "Email address of the user")
	userCreateCmd.Flags().StringVar(&login, "login", "", "Login of the user, defaults to the email address")
	userCreateCmd.Flags().StringVar(&password, "password", "", "Initial password, omit for a passwordless staged user")
	userCreateCmd.Flags().BoolVar(&noActivate, "no-activate", false, "Create the user in STAGED state")
	userCreateCmd.MarkFlagRequired("first-name")
	userCreateCmd.MarkFlagRequired("last-name")
	userCreateCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(userCreateCmd)
}
