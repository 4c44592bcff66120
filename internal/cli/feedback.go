package cli

import (
	"fmt"
	"io"
	"strings"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"

	"github.com/spf13/cobra"
)

func (a *App) feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feedback",
		Aliases: []string{"fb"},
		Short:   "Read and write feedback",
	}
	cmd.AddCommand(
		a.feedbackListCmd(),
		a.feedbackCreateCmd(),
		a.feedbackUpdateCmd(),
		a.feedbackAckCmd(),
	)
	return cmd
}

func (a *App) feedbackListCmd() *cobra.Command {
	var employeeID int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback (managers: team feedback, employees: your timeline)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !user.IsManager() {
				if employeeID > 0 {
					return requireRole(user, entities.RoleManager, "filter feedback by employee")
				}
				dash, err := a.uc.EmployeeDashboard(ctx)
				if err != nil {
					return a.failAuthed(err, "Could not load your feedback.")
				}
				printTimeline(out, dash, user)
				return nil
			}

			var list []entities.Feedback
			heading := "All Team Feedback"
			if employeeID > 0 {
				list, err = a.uc.EmployeeFeedback(ctx, employeeID)
				heading = fmt.Sprintf("Feedback for employee #%d", employeeID)
			} else {
				list, err = a.uc.FeedbackList(ctx)
			}
			if err != nil {
				return a.failAuthed(err, "Could not load feedback.")
			}

			fmt.Fprintln(out, titleStyle.Render(heading))
			if len(list) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No feedback has been created yet."))
				return nil
			}
			for _, card := range mapper.ToFeedbackCards(list, user, 0) {
				printCard(out, card)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&employeeID, "employee", 0, "Only show feedback for this team member id")
	return cmd
}

func (a *App) feedbackCreateCmd() *cobra.Command {
	var (
		employeeID   int
		strengths    string
		improvements string
		sentiment    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write feedback for a team member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := requireRole(user, entities.RoleManager, "create feedback"); err != nil {
				return err
			}

			fb, err := a.uc.CreateFeedback(ctx, entities.FeedbackCreate{
				EmployeeID:   employeeID,
				Strengths:    strengths,
				Improvements: improvements,
				Sentiment:    entities.Sentiment(strings.ToLower(sentiment)),
			})
			if err != nil {
				return a.failAuthed(err, "Could not create feedback.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Created feedback #%d %s\n",
				successStyle.Render("✓"), fb.ID, badge(fb.Sentiment))
			return nil
		},
	}
	cmd.Flags().IntVar(&employeeID, "employee", 0, "Team member id")
	cmd.Flags().StringVar(&strengths, "strengths", "", "What are their key strengths?")
	cmd.Flags().StringVar(&improvements, "improvements", "", "What areas could they work on?")
	cmd.Flags().StringVar(&sentiment, "sentiment", string(entities.SentimentNeutral), "positive, neutral or negative")
	return cmd
}

func (a *App) feedbackUpdateCmd() *cobra.Command {
	var (
		strengths    string
		improvements string
		sentiment    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit feedback you wrote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := requireRole(user, entities.RoleManager, "edit feedback"); err != nil {
				return err
			}

			var req entities.FeedbackUpdate
			flags := cmd.Flags()
			if flags.Changed("strengths") {
				req.Strengths = &strengths
			}
			if flags.Changed("improvements") {
				req.Improvements = &improvements
			}
			if flags.Changed("sentiment") {
				s := entities.Sentiment(strings.ToLower(sentiment))
				req.Sentiment = &s
			}

			fb, err := a.uc.UpdateFeedback(ctx, id, req)
			if err != nil {
				return a.failAuthed(err, "Could not update feedback.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated feedback #%d %s\n",
				successStyle.Render("✓"), fb.ID, badge(fb.Sentiment))
			return nil
		},
	}
	cmd.Flags().StringVar(&strengths, "strengths", "", "New strengths text")
	cmd.Flags().StringVar(&improvements, "improvements", "", "New areas to improve")
	cmd.Flags().StringVar(&sentiment, "sentiment", "", "positive, neutral or negative")
	return cmd
}

func (a *App) feedbackAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ack <id>",
		Aliases: []string{"acknowledge"},
		Short:   "Acknowledge feedback you received",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, user, err := a.signedIn(cmd.Context())
			if err != nil {
				return err
			}
			if err := requireRole(user, entities.RoleEmployee, "acknowledge feedback"); err != nil {
				return err
			}

			if err := a.uc.AcknowledgeFeedback(ctx, id); err != nil {
				return a.failAuthed(err, "Could not acknowledge feedback.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Acknowledged feedback #%d\n", successStyle.Render("✓"), id)
			return nil
		},
	}
}

func printTimeline(out io.Writer, dash *entities.EmployeeDashboard, viewer entities.User) {
	fmt.Fprintln(out, titleStyle.Render("Feedback Timeline"))
	if len(dash.Timeline) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No feedback yet. Check back later for updates from your manager."))
	}
	for _, group := range mapper.ToTimeline(dash.Timeline, viewer) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render(group.Label))
		for _, card := range group.Cards {
			printCard(out, card)
		}
	}
	if msg := mapper.UnreadMessage(dash.Stats.UnacknowledgedFeedback); msg != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, warningStyle.Render(msg))
	}
}

func printCard(out io.Writer, card mapper.FeedbackCardView) {
	status := ""
	if card.Acknowledged {
		status = " " + successStyle.Render("acknowledged")
	}
	dates := card.CreatedAt
	if card.Edited {
		dates += ", edited " + card.UpdatedAt
	}

	fmt.Fprintf(out, "#%d %s %s %s %s%s\n",
		card.ID, badge(entities.Sentiment(card.Sentiment)), card.CounterpartLabel, card.Counterpart, mutedStyle.Render(dates), status)
	fmt.Fprintf(out, "  Strengths:        %s\n", card.Strengths)
	fmt.Fprintf(out, "  Areas to Improve: %s\n", card.Improvements)
}
