package listview

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"hospital-ops/client/models"
)

func ticketFixture() []models.Ticket {
	return []models.Ticket{
		{ID: 1, Title: "Leaking tap in ward 3", Description: "Water on the floor", Status: models.TicketClosed},
		{ID: 2, Title: "Broken tap handle", Description: "Handle came off", Status: models.TicketOpen},
		{ID: 3, Title: "Flickering corridor light", Description: "East wing", Status: models.TicketClosed},
		{ID: 4, Title: "AC unit noise", Description: "Room 210", Status: models.TicketInProgress},
	}
}

func loadedView(t *testing.T, tickets []models.Ticket) *View[models.Ticket] {
	t.Helper()
	v := New(func(ctx context.Context) ([]models.Ticket, error) {
		return tickets, nil
	})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return v
}

func TestVisibleIntersectsFilters(t *testing.T) {
	v := loadedView(t, ticketFixture())

	v.SetStatusFilter("closed")
	v.SetSearch("tap")

	got := v.Visible()
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("closed+tap should match exactly ticket 1, got %v", got)
	}
}

func TestSearchMatchesTitleDescriptionAndID(t *testing.T) {
	v := loadedView(t, ticketFixture())

	v.SetSearch("east wing")
	if got := v.Visible(); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("description search = %v, want ticket 3", got)
	}

	v.SetSearch("4")
	if got := v.Visible(); len(got) != 1 || got[0].ID != 4 {
		t.Errorf("id search = %v, want ticket 4", got)
	}

	v.SetSearch("  LEAKING  ")
	if got := v.Visible(); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("search should trim and lowercase, got %v", got)
	}
}

func TestCountsIgnoreFilters(t *testing.T) {
	v := loadedView(t, ticketFixture())

	v.SetStatusFilter("open")
	v.SetSearch("tap")

	want := map[string]int{"open": 1, "in_progress": 1, "closed": 2}
	if got := v.CountsByStatus(); !reflect.DeepEqual(got, want) {
		t.Errorf("CountsByStatus = %v, want %v", got, want)
	}
}

func TestCountsRecomputeAfterReload(t *testing.T) {
	tickets := ticketFixture()
	var mu sync.Mutex
	v := New(func(ctx context.Context) ([]models.Ticket, error) {
		mu.Lock()
		defer mu.Unlock()
		out := make([]models.Ticket, len(tickets))
		copy(out, tickets)
		return out, nil
	})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	mu.Lock()
	tickets[1].Status = models.TicketClosed
	mu.Unlock()
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	want := map[string]int{"in_progress": 1, "closed": 3}
	if got := v.CountsByStatus(); !reflect.DeepEqual(got, want) {
		t.Errorf("counts after reload = %v, want %v", got, want)
	}
}

func TestEmptyReason(t *testing.T) {
	empty := loadedView(t, nil)
	if got := empty.Empty(); got != NoData {
		t.Errorf("empty server list: Empty() = %v, want NoData", got)
	}

	v := loadedView(t, ticketFixture())
	if got := v.Empty(); got != NotEmpty {
		t.Errorf("unfiltered list: Empty() = %v, want NotEmpty", got)
	}

	v.SetSearch("no such ticket anywhere")
	if got := v.Empty(); got != NoMatch {
		t.Errorf("filtered-out list: Empty() = %v, want NoMatch", got)
	}
}

func TestLoadDedupsInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	v := New(func(ctx context.Context) ([]models.Ticket, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return ticketFixture(), nil
	})

	done := make(chan error)
	go func() { done <- v.Load(context.Background()) }()
	<-started

	// Second Load while the first is in flight must be a no-op.
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("duplicate load returned %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("fetch called %d times during in-flight load, want 1", got)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first load: %v", err)
	}
	if v.State() != StateSuccess {
		t.Errorf("state = %v, want StateSuccess", v.State())
	}
}

func TestFailedLoadClearsItems(t *testing.T) {
	fail := errors.New("backend down")
	step := 0
	v := New(func(ctx context.Context) ([]models.Ticket, error) {
		step++
		if step == 1 {
			return ticketFixture(), nil
		}
		return nil, fail
	})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if v.Len() != 4 {
		t.Fatalf("Len = %d after first load, want 4", v.Len())
	}

	if err := v.Load(context.Background()); !errors.Is(err, fail) {
		t.Fatalf("second load should fail, got %v", err)
	}
	if v.State() != StateError {
		t.Errorf("state = %v, want StateError", v.State())
	}
	if v.Len() != 0 {
		t.Errorf("Len = %d after failed load, want 0 (no stale data)", v.Len())
	}
	if !errors.Is(v.Err(), fail) {
		t.Errorf("Err() = %v, want the fetch error", v.Err())
	}
}

func TestStatusFilterEmptyMeansAll(t *testing.T) {
	v := loadedView(t, ticketFixture())
	v.SetStatusFilter("open")
	v.SetStatusFilter("")
	if got := len(v.Visible()); got != 4 {
		t.Errorf("empty status filter should show all, got %d items", got)
	}
}
