// Package workflow is the single definition of every status lattice in the
// system. Dashboards consult it twice: once to decide which action controls
// to offer, and again right before issuing a transition request.
package workflow

import (
	"fmt"

	"hospital-ops/client/models"
)

// Policy names how strictly a dashboard follows the lattice.
type Policy string

const (
	// PolicyStrict permits only the edges defined in the lattice.
	PolicyStrict Policy = "strict"
	// PolicyAdminOverride lets an admin move a record to any other status.
	// This mirrors the admin dashboard's direct open->closed controls, kept
	// as an explicit privilege rather than an accident.
	PolicyAdminOverride Policy = "admin_override"
)

// Lattice maps each status to the statuses reachable from it.
type Lattice map[string][]string

var ticketLattice = Lattice{
	string(models.TicketOpen):       {string(models.TicketInProgress), string(models.TicketClosed)},
	string(models.TicketInProgress): {string(models.TicketClosed)},
	string(models.TicketClosed):     {},
}

var workOrderLattice = Lattice{
	string(models.WorkOrderOpen):       {string(models.WorkOrderAssigned), string(models.WorkOrderInProgress)},
	string(models.WorkOrderAssigned):   {string(models.WorkOrderInProgress)},
	string(models.WorkOrderInProgress): {string(models.WorkOrderCompleted)},
	string(models.WorkOrderCompleted):  {string(models.WorkOrderClosed)},
	string(models.WorkOrderClosed):     {},
}

var appointmentLattice = Lattice{
	string(models.AppointmentScheduled):  {string(models.AppointmentConfirmed), string(models.AppointmentCancelled), string(models.AppointmentNoShow)},
	string(models.AppointmentConfirmed):  {string(models.AppointmentInProgress), string(models.AppointmentCancelled), string(models.AppointmentNoShow)},
	string(models.AppointmentInProgress): {string(models.AppointmentCompleted)},
	string(models.AppointmentCompleted):  {},
	string(models.AppointmentCancelled):  {},
	string(models.AppointmentNoShow):     {},
}

// Engine binds a lattice to a policy for one entity type.
type Engine struct {
	lattice Lattice
	policy  Policy
}

func NewTicketEngine(policy Policy) *Engine {
	return &Engine{lattice: ticketLattice, policy: policy}
}

func NewWorkOrderEngine(policy Policy) *Engine {
	return &Engine{lattice: workOrderLattice, policy: policy}
}

func NewAppointmentEngine(policy Policy) *Engine {
	return &Engine{lattice: appointmentLattice, policy: policy}
}

// Allowed returns the statuses reachable from current. This is what a view
// renders action controls from; anything outside it must not get a button.
func (e *Engine) Allowed(current string) []string {
	if e.policy == PolicyAdminOverride {
		all := make([]string, 0, len(e.lattice))
		for status := range e.lattice {
			if status != current {
				all = append(all, status)
			}
		}
		return all
	}
	next, ok := e.lattice[current]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

func (e *Engine) CanTransition(current, next string) bool {
	for _, s := range e.Allowed(current) {
		if s == next {
			return true
		}
	}
	return false
}

// Validate rejects a transition the policy doesn't permit, before any
// request goes out.
func (e *Engine) Validate(current, next string) error {
	if _, known := e.lattice[next]; !known {
		return fmt.Errorf("unknown status %q: %w", next, models.ErrBadTransition)
	}
	if !e.CanTransition(current, next) {
		return fmt.Errorf("%s -> %s: %w", current, next, models.ErrBadTransition)
	}
	return nil
}

// Terminal reports whether no transition leaves the given status under the
// strict lattice.
func (e *Engine) Terminal(status string) bool {
	return len(e.lattice[status]) == 0
}
