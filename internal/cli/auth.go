package cli

import (
	"fmt"
	"strings"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/usecase/domain"

	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in with a username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.uc.Login(cmd.Context(), entities.LoginRequest{Username: args[0]})
			if err != nil {
				return fail(err, domain.MsgLoginFailedFallback)
			}
			return a.saveSession(cmd, sess)
		},
	}
}

func (a *App) signupCmd() *cobra.Command {
	var (
		username  string
		email     string
		role      string
		managerID int
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := entities.RegisterRequest{
				Username: username,
				Email:    email,
				Role:     entities.Role(strings.ToLower(strings.TrimSpace(role))),
			}
			if managerID > 0 {
				req.ManagerID = &managerID
			}

			sess, err := a.uc.Register(cmd.Context(), req)
			if err != nil {
				return fail(err, domain.MsgRegisterFailedFallback)
			}
			return a.saveSession(cmd, sess)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username for the new account")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&role, "role", string(entities.RoleEmployee), "Account role (manager or employee)")
	cmd.Flags().IntVar(&managerID, "manager-id", 0, "Manager id, required for employees (see `feedbackctl managers`)")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved sign-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.creds.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, _, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.uc.CurrentUser(ctx)
			if err != nil {
				return a.failAuthed(err, "Could not load your account.")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render(user.Username), mutedStyle.Render("("+string(user.Role)+")"))
			fmt.Fprintf(out, "id:    %d\n", user.ID)
			fmt.Fprintf(out, "email: %s\n", user.Email)
			if user.ManagerID != nil {
				fmt.Fprintf(out, "manager id: %d\n", *user.ManagerID)
			}
			return nil
		},
	}
}

func (a *App) saveSession(cmd *cobra.Command, sess *entities.Session) error {
	if err := a.creds.Save(sess); err != nil {
		a.log.Errorw("failed to save credentials", "path", a.creds.Path(), "error", err)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Signed in as %s (%s).\n",
		successStyle.Render("✓"), sess.User.Username, sess.User.Role)
	return nil
}
