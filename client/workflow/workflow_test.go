package workflow

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"hospital-ops/client/models"
)

func TestTicketEngineStrictAllowed(t *testing.T) {
	e := NewTicketEngine(PolicyStrict)

	cases := []struct {
		current string
		want    []string
	}{
		{"open", []string{"in_progress", "closed"}},
		{"in_progress", []string{"closed"}},
		{"closed", []string{}},
	}

	for _, c := range cases {
		got := e.Allowed(c.current)
		sort.Strings(got)
		sort.Strings(c.want)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Allowed(%q) = %v, want %v", c.current, got, c.want)
		}
	}
}

func TestTicketEngineAdminOverride(t *testing.T) {
	e := NewTicketEngine(PolicyAdminOverride)

	got := e.Allowed("closed")
	sort.Strings(got)
	want := []string{"in_progress", "open"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Allowed(closed) under override = %v, want %v", got, want)
	}

	if !e.CanTransition("closed", "open") {
		t.Error("admin override should permit closed -> open")
	}
	if e.CanTransition("closed", "closed") {
		t.Error("a status must not transition to itself")
	}
}

func TestValidateRejectsBadTransitions(t *testing.T) {
	e := NewTicketEngine(PolicyStrict)

	if err := e.Validate("open", "in_progress"); err != nil {
		t.Fatalf("open -> in_progress should be allowed, got %v", err)
	}

	err := e.Validate("closed", "open")
	if !errors.Is(err, models.ErrBadTransition) {
		t.Errorf("closed -> open should fail with ErrBadTransition, got %v", err)
	}

	err = e.Validate("open", "resolved")
	if !errors.Is(err, models.ErrBadTransition) {
		t.Errorf("unknown target status should fail with ErrBadTransition, got %v", err)
	}
}

func TestWorkOrderLatticeChain(t *testing.T) {
	e := NewWorkOrderEngine(PolicyStrict)

	chain := []string{"open", "assigned", "in_progress", "completed", "closed"}
	for i := 0; i < len(chain)-1; i++ {
		if err := e.Validate(chain[i], chain[i+1]); err != nil {
			t.Errorf("%s -> %s should be allowed, got %v", chain[i], chain[i+1], err)
		}
	}

	if err := e.Validate("open", "completed"); !errors.Is(err, models.ErrBadTransition) {
		t.Errorf("open -> completed skips the chain, got %v", err)
	}
	if err := e.Validate("completed", "in_progress"); !errors.Is(err, models.ErrBadTransition) {
		t.Errorf("completed -> in_progress moves backwards, got %v", err)
	}
}

func TestAppointmentLattice(t *testing.T) {
	e := NewAppointmentEngine(PolicyStrict)

	allowed := []struct{ from, to string }{
		{"scheduled", "confirmed"},
		{"scheduled", "cancelled"},
		{"scheduled", "no_show"},
		{"confirmed", "in_progress"},
		{"confirmed", "cancelled"},
		{"in_progress", "completed"},
	}
	for _, c := range allowed {
		if !e.CanTransition(c.from, c.to) {
			t.Errorf("%s -> %s should be allowed", c.from, c.to)
		}
	}

	if e.CanTransition("scheduled", "completed") {
		t.Error("scheduled -> completed skips confirmation")
	}
	if e.CanTransition("cancelled", "scheduled") {
		t.Error("cancelled is terminal")
	}
}

func TestTerminal(t *testing.T) {
	e := NewAppointmentEngine(PolicyStrict)

	for _, s := range []string{"completed", "cancelled", "no_show"} {
		if !e.Terminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []string{"scheduled", "confirmed", "in_progress"} {
		if e.Terminal(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
