package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iouser"
	"github.com/gnames/gnkin/pkg/roster"
	"github.com/gnames/gnkin/pkg/user"
	"github.com/spf13/cobra"
)

// withUsers connects to the database and runs fn with a user manager.
func withUsers(ctx context.Context, fn func(user.Manager) error) error {
	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	users, err := iouser.New(op, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer users.Close()

	if err = fn(users); err != nil {
		gn.PrintErrorMessage(err)
	}
	return err
}

// findUser finds a user by name or email.
func findUser(ctx context.Context, users user.Manager, identifier string) (*user.User, error) {
	u, err := users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %s", user.ErrNotFound, identifier)
	}
	return u, nil
}

func getUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	userCmd.AddCommand(
		getUserAddCmd(),
		getUserListCmd(),
		getUserDeleteCmd(),
		getUserPasswdCmd(),
		getUserPrefCmd(),
		getUserApproveCmd(),
	)
	return userCmd
}

func getUserAddCmd() *cobra.Command {
	var e roster.Entry

	cmd := &cobra.Command{
		Use:   "add USER_NAME",
		Short: "Add a verified and approved account",
		Long: `Add creates an account that can log in right away.

Examples:
  gnkin user add admin --real-name "Site Admin" \
    --email admin@example.org --password secret --admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e.UserName = args[0]
			if err := e.Validate(); err != nil {
				gn.Warn("%s", err)
				return err
			}
			return withUsers(cmd.Context(), func(users user.Manager) error {
				return addUser(cmd.Context(), users, e)
			})
		},
	}

	cmd.Flags().StringVarP(&e.RealName, "real-name", "r", "", "display name")
	cmd.Flags().StringVarP(&e.Email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&e.Password, "password", "p", "", "password")
	cmd.Flags().StringVarP(&e.Language, "language", "l", "", "interface language")
	cmd.Flags().BoolVarP(&e.Admin, "admin", "a", false, "grant administrator rights")
	return cmd
}

func addUser(ctx context.Context, users user.Manager, e roster.Entry) error {
	prefs := map[string]string{user.PrefLanguage: e.Language}
	if e.Admin {
		prefs[user.PrefCanAdmin] = "1"
	}
	u, err := users.CreateActive(ctx, e.UserName, e.RealName, e.Email, e.Password, prefs)
	if err != nil {
		return err
	}
	gn.Info("Created user <em>%s</em> with ID %d", u.UserName, u.ID)
	return nil
}

func getUserListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long: fmt.Sprintf(`List prints accounts selected by a filter.

Filters: %v

Examples:
  gnkin user list
  gnkin user list --filter unapproved`, user.Filters()),
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := user.ParseFilter(filter)
			if err != nil {
				gn.Warn("%s", err)
				return err
			}
			return withUsers(cmd.Context(), func(users user.Manager) error {
				res, err := users.List(cmd.Context(), f)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tUSER NAME\tREAL NAME\tEMAIL")
				for _, u := range res {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.UserName, u.RealName, u.Email)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "user list filter")
	return cmd
}

func getUserDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER",
		Short: "Delete an account",
		Long: `Delete removes an account with its preferences, sessions and blocks.
Pending edits of the user are kept and reassigned to the visitor account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withUsers(ctx, func(users user.Manager) error {
				u, err := findUser(ctx, users, args[0])
				if err != nil {
					return err
				}
				if !force {
					ok, err := confirm(fmt.Sprintf("Delete user '%s'?", u.UserName))
					if err != nil || !ok {
						gn.Info("Aborted. No changes made.")
						return err
					}
				}
				if err = users.Delete(ctx, u, user.VisitorID); err != nil {
					return err
				}
				gn.Info("Deleted user <em>%s</em>", u.UserName)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")
	return cmd
}

func getUserPasswdCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "passwd USER",
		Short: "Set the password of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				err := errors.New("password cannot be empty")
				gn.Warn("%s", err)
				return err
			}
			ctx := cmd.Context()
			return withUsers(ctx, func(users user.Manager) error {
				u, err := findUser(ctx, users, args[0])
				if err != nil {
					return err
				}
				if err = users.SetPassword(ctx, u, password); err != nil {
					return err
				}
				gn.Info("Password of <em>%s</em> changed", u.UserName)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "new password")
	return cmd
}

func getUserPrefCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pref USER NAME [VALUE]",
		Short: "Show or change a preference of an account",
		Long: `Pref prints a preference of an account, or stores a new value when
VALUE is given.

Examples:
  gnkin user pref jdoe language
  gnkin user pref jdoe language de`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withUsers(ctx, func(users user.Manager) error {
				u, err := findUser(ctx, users, args[0])
				if err != nil {
					return err
				}
				if len(args) == 3 {
					return users.SetPreference(ctx, u, args[1], args[2])
				}
				val, err := users.Preference(ctx, u, args[1], "")
				if err != nil {
					return err
				}
				fmt.Println(val)
				return nil
			})
		},
	}
}

func getUserApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve USER",
		Short: "Verify and approve a registered account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withUsers(ctx, func(users user.Manager) error {
				u, err := findUser(ctx, users, args[0])
				if err != nil {
					return err
				}
				err = errors.Join(users.Verify(ctx, u), users.Approve(ctx, u))
				if err != nil {
					return err
				}
				gn.Info("User <em>%s</em> can log in now", u.UserName)
				return nil
			})
		},
	}
}
