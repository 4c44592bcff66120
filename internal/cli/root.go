// Package cli implements the feedbackctl terminal client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lightweight-feedback-system/internal/credentials"
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/usecase"
	"lightweight-feedback-system/pkg/bearer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const msgSessionExpired = "Your session has expired. Run `feedbackctl login <username>` to sign in again."

// App holds the dependencies shared by every command.
type App struct {
	log   *zap.SugaredLogger
	uc    usecase.InterfaceUsecase
	creds *credentials.Store
}

// NewRootCmd builds the feedbackctl command tree.
func NewRootCmd(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, creds *credentials.Store) *cobra.Command {
	a := &App{log: log.Named("cli"), uc: uc, creds: creds}

	root := &cobra.Command{
		Use:           "feedbackctl",
		Short:         "Terminal client for the lightweight feedback system",
		Long:          "feedbackctl signs in to the feedback API and lets managers and employees work with feedback from a terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.loginCmd(),
		a.signupCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.managersCmd(),
		a.teamCmd(),
		a.feedbackCmd(),
		a.statsCmd(),
	)
	return root
}

// Error is a failure worded for the terminal.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// fail words err for the terminal without treating a 401 as an expired sign-in.
func fail(err error, fallback string) error {
	return &Error{Message: entities.UserMessage(err, fallback), Err: err}
}

// failAuthed words err for a signed-in command. A rejected token drops the
// saved credentials.
func (a *App) failAuthed(err error, fallback string) error {
	if errors.Is(err, credentials.ErrSignedOut) {
		return &Error{Message: "Not signed in. Run `feedbackctl login <username>` first.", Err: err}
	}
	if errors.Is(err, entities.ErrUnauthorized) {
		if clearErr := a.creds.Clear(); clearErr != nil {
			a.log.Errorw("failed to clear credentials", "error", clearErr)
		}
		return &Error{Message: msgSessionExpired, Err: err}
	}
	if errors.Is(err, entities.ErrForbidden) {
		return &Error{Message: entities.UserMessage(err, "You are not allowed to do that."), Err: err}
	}
	return fail(err, fallback)
}

// signedIn returns a context carrying the saved token and the saved user.
func (a *App) signedIn(ctx context.Context) (context.Context, entities.User, error) {
	creds, err := a.creds.Load()
	if err != nil {
		return nil, entities.User{}, a.failAuthed(err, "Could not read saved credentials.")
	}
	return bearer.WithToken(ctx, creds.Token), creds.User(), nil
}

func requireRole(user entities.User, role entities.Role, action string) error {
	if user.Role != role {
		return &Error{
			Message: fmt.Sprintf("Only %ss can %s.", role, action),
			Err:     entities.ErrForbidden,
		}
	}
	return nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, &Error{Message: fmt.Sprintf("Invalid feedback id %q", arg), Err: entities.ErrInvalidArgument}
	}
	return id, nil
}
