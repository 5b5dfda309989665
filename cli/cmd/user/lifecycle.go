package user

import (
	"context"

	"github.com/schubergphilis/oktalib/cli/functions"
	"github.com/schubergphilis/oktalib/okta"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func lifecycleCmd(verb, short string, action func(ctx context.Context, u *okta.User) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " [USER LOGIN]",
		Args:  cobra.ExactArgs(1),
		Short: short,
		Long:  short,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			user, err := functions.Client().GetUserByLogin(ctx, args[0])
			if err != nil {
				logrus.Fatalf("Unable to get user: %s", err)
			}
			if err := action(ctx, user); err != nil {
				logrus.Fatalf("Unable to %s user: %s", verb, err)
			}
			functions.PrettyPrint(user)
		},
	}
}

func init() {
	rootCmd.AddCommand(lifecycleCmd("activate", "Activate a user", func(ctx context.Context, u *okta.User) error {
		return u.Activate(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("deactivate", "Deactivate a user", func(ctx context.Context, u *okta.User) error {
		return u.Deactivate(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("suspend", "Suspend a user", func(ctx context.Context, u *okta.User) error {
		return u.Suspend(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("unsuspend", "Unsuspend a user", func(ctx context.Context, u *okta.User) error {
		return u.Unsuspend(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("unlock", "Unlock a user", func(ctx context.Context, u *okta.User) error {
		return u.Unlock(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("expire-password", "Expire the password of a user", func(ctx context.Context, u *okta.User) error {
		return u.ExpirePassword(ctx)
	}))
	rootCmd.AddCommand(lifecycleCmd("reset-password", "Start a password reset for a user", func(ctx context.Context, u *okta.User) error {
		return u.ResetPassword(ctx)
	}))
}
