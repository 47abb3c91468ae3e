package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-ops/client/api"
	"hospital-ops/client/models"
)

func TestTransitionSendsPutThenRefetches(t *testing.T) {
	var sent struct {
		Status      string   `json:"status"`
		ActualHours *float64 `json:"actual_hours"`
	}
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&sent)
	}))
	defer srv.Close()

	refetched := false
	e := NewTicketEngine(PolicyStrict)
	err := e.Transition(context.Background(), api.NewClient(srv.URL), "/admin/ticket/5/status",
		"open", "in_progress", nil, func(ctx context.Context) error {
			refetched = true
			return nil
		})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if sent.Status != "in_progress" {
		t.Errorf("sent status = %q, want in_progress", sent.Status)
	}
	if !refetched {
		t.Error("successful transition should refetch the owning view")
	}
	if requests != 1 {
		t.Errorf("backend saw %d requests, want 1", requests)
	}
}

func TestTransitionRejectedBeforeNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	e := NewTicketEngine(PolicyStrict)
	err := e.Transition(context.Background(), api.NewClient(srv.URL), "/admin/ticket/5/status",
		"closed", "open", nil, nil)
	if !errors.Is(err, models.ErrBadTransition) {
		t.Fatalf("transition = %v, want ErrBadTransition", err)
	}
	if requests != 0 {
		t.Errorf("rejected transition must not reach the network, backend saw %d requests", requests)
	}
}

func TestTransitionAttachesHoursOnCompletion(t *testing.T) {
	var sent map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
	}))
	defer srv.Close()

	hours := 2.5
	e := NewWorkOrderEngine(PolicyStrict)
	err := e.Transition(context.Background(), api.NewClient(srv.URL), "/work-order/9/status",
		"in_progress", "completed", &hours, nil)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if got, ok := sent["actual_hours"].(float64); !ok || got != 2.5 {
		t.Errorf("actual_hours = %v, want 2.5", sent["actual_hours"])
	}
}

func TestTransitionDropsHoursOutsideCompletion(t *testing.T) {
	var sent map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
	}))
	defer srv.Close()

	hours := 1.0
	e := NewWorkOrderEngine(PolicyStrict)
	err := e.Transition(context.Background(), api.NewClient(srv.URL), "/work-order/9/status",
		"assigned", "in_progress", &hours, nil)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if _, present := sent["actual_hours"]; present {
		t.Error("actual_hours should only ride along into completed or closed")
	}
}
