package cli

import (
	"fmt"
	"text/tabwriter"

	"lightweight-feedback-system/internal/entities"

	"github.com/spf13/cobra"
)

func (a *App) managersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "managers",
		Short: "List manager accounts (for signup)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			managers, err := a.uc.Managers(cmd.Context())
			if err != nil {
				return fail(err, "Could not load managers.")
			}
			printUsers(cmd, managers, "No managers found.")
			return nil
		},
	}
}

func (a *App) teamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team",
		Short: "List your team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := requireRole(user, entities.RoleManager, "list a team"); err != nil {
				return err
			}

			team, err := a.uc.TeamMembers(ctx)
			if err != nil {
				return a.failAuthed(err, "Could not load your team.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("Team Members (%d)", len(team))))
			printUsers(cmd, team, "No team members yet.")
			return nil
		},
	}
}

func printUsers(cmd *cobra.Command, users []entities.User, empty string) {
	out := cmd.OutOrStdout()
	if len(users) == 0 {
		fmt.Fprintln(out, mutedStyle.Render(empty))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Email)
	}
	_ = w.Flush()
}
