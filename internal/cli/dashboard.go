package cli

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"promptadmin/internal/models"
)

// Dashboard renders the landing screen: user totals derived client-side from
// the full user list, plus the server-side example-usage statistics. The two
// fetches are independent, so they run concurrently.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		users []models.User
		stats models.UsageStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = a.users.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = a.usage.Stats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		a.renderError(ctx, err)
		return nil
	}

	var admins, regular int
	for _, u := range users {
		switch u.Role {
		case models.RoleAdmin:
			admins++
		case models.RoleUser:
			regular++
		}
	}

	printlnFn("=== Dashboard ===")
	fmt.Fprintf(a.out, "Users: %d total, %d admins, %d regular\n", len(users), admins, regular)

	if len(stats) == 0 {
		printlnFn("No example runs recorded yet.")
		return nil
	}

	indexes := make([]int, 0, len(stats))
	for idx := range stats {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	printlnFn("Example runs:")
	for _, idx := range indexes {
		label := fmt.Sprintf("example %d", idx)
		if idx >= 0 && idx < len(builtinExamples) {
			label = builtinExamples[idx].Label
		}
		fmt.Fprintf(a.out, "  %-24s %d\n", label, stats[idx])
	}
	return nil
}
