// Package domain contains application services orchestrating domain logic by dashboard.
package domain

import (
	"context"
	"fmt"

	"lightweight-feedback-system/internal/entities"

	"golang.org/x/sync/errgroup"
)

// Stats returns the dashboard counters.
func (u *Usecase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.DashboardStats(ctx)
}

// ManagerDashboard loads roster, feedback and stats concurrently. A positive
// employeeID narrows the feedback list to that team member; the roster is then
// loaded first so an employee outside the team is rejected before any of
// their feedback is requested.
func (u *Usecase) ManagerDashboard(ctx context.Context, employeeID int) (*entities.ManagerDashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res := &entities.ManagerDashboard{}
	if employeeID > 0 {
		team, err := u.repo.TeamMembers(ctx)
		if err != nil {
			u.log.Errorw("failed to load manager dashboard", "employee_id", employeeID, "error", err)
			return nil, fmt.Errorf("team: %w", err)
		}
		res.Team = team
		res.Selected = findMember(team, employeeID)
		if res.Selected == nil {
			return nil, fmt.Errorf("%w: employee %d is not in your team", entities.ErrNotFound, employeeID)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if employeeID <= 0 {
		eg.Go(func() error {
			team, err := u.repo.TeamMembers(egCtx)
			if err != nil {
				return fmt.Errorf("team: %w", err)
			}
			res.Team = team
			return nil
		})
	}
	eg.Go(func() error {
		var (
			list []entities.Feedback
			err  error
		)
		if employeeID > 0 {
			list, err = u.repo.EmployeeFeedback(egCtx, employeeID)
		} else {
			list, err = u.repo.ListFeedback(egCtx)
		}
		if err != nil {
			return fmt.Errorf("feedback: %w", err)
		}
		SortNewestFirst(list)
		res.Feedback = list
		return nil
	})
	eg.Go(func() error {
		stats, err := u.repo.DashboardStats(egCtx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		res.Stats = stats
		return nil
	})

	if err := eg.Wait(); err != nil {
		u.log.Errorw("failed to load manager dashboard", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return res, nil
}

func findMember(team []entities.User, id int) *entities.User {
	for i := range team {
		if team[i].ID == id {
			member := team[i]
			return &member
		}
	}
	return nil
}

// EmployeeDashboard loads feedback and stats concurrently and builds the monthly timeline.
func (u *Usecase) EmployeeDashboard(ctx context.Context) (*entities.EmployeeDashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	res := &entities.EmployeeDashboard{}
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		list, err := u.repo.ListFeedback(egCtx)
		if err != nil {
			return fmt.Errorf("feedback: %w", err)
		}
		SortNewestFirst(list)
		res.Feedback = list
		return nil
	})
	eg.Go(func() error {
		stats, err := u.repo.DashboardStats(egCtx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		res.Stats = stats
		return nil
	})

	if err := eg.Wait(); err != nil {
		u.log.Errorw("failed to load employee dashboard", "error", err)
		return nil, err
	}

	res.Timeline = GroupByMonth(res.Feedback)
	return res, nil
}
