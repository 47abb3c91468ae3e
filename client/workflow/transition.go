package workflow

import (
	"context"
	"fmt"

	"hospital-ops/client/api"
)

// statusUpdate is the PUT body for a status change. actual_hours rides along
// only on work-order transitions into completed or closed.
type statusUpdate struct {
	Status      string   `json:"status"`
	ActualHours *float64 `json:"actual_hours,omitempty"`
}

var hoursStatuses = map[string]bool{
	"completed": true,
	"closed":    true,
}

// Transition validates the step against the lattice, issues a single PUT to
// path, and on success calls refetch so the owning view reloads from the
// server. There is no optimistic update: server-computed fields such as
// resolved_at only ever arrive via the refetch. Failures leave local state
// untouched and are not retried.
func (e *Engine) Transition(ctx context.Context, client *api.Client, path, current, next string, actualHours *float64, refetch func(context.Context) error) error {
	if err := e.Validate(current, next); err != nil {
		return err
	}

	update := statusUpdate{Status: next}
	if actualHours != nil && hoursStatuses[next] {
		update.ActualHours = actualHours
	}

	if err := client.Put(ctx, path, update, nil); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if refetch != nil {
		return refetch(ctx)
	}
	return nil
}
