package cli

import (
	"fmt"
	"text/tabwriter"

	"lightweight-feedback-system/internal/mapper"

	"github.com/spf13/cobra"
)

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			stats, err := a.uc.Stats(ctx)
			if err != nil {
				return a.failAuthed(err, "Could not load stats.")
			}

			cards := mapper.EmployeeStats(stats)
			if user.IsManager() {
				cards = mapper.ManagerStats(stats)
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, c := range cards {
				fmt.Fprintf(w, "%s\t%d\n", c.Label, c.Value)
			}
			_ = w.Flush()

			if !user.IsManager() {
				if msg := mapper.UnreadMessage(stats.UnacknowledgedFeedback); msg != "" {
					fmt.Fprintln(out, warningStyle.Render(msg))
				}
			}
			return nil
		},
	}
}
