package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-ops/client/api"
)

type ticketDraft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority,omitempty"`
}

func newTestFlow(t *testing.T, handler http.HandlerFunc) *Flow[ticketDraft] {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL)
	return NewFlow(client, "/department/ticket/create", ticketDraft{Priority: "medium"}, "Failed to create ticket")
}

func TestSubmitSuccessResetsDraft(t *testing.T) {
	refetched := false
	flow := newTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).OnSuccess(func(ctx context.Context) error {
		refetched = true
		return nil
	})

	flow.Open()
	draft := flow.Draft()
	draft.Title = "Leaking tap"
	draft.Description = "Ward 3 sink"
	draft.Category = "plumbing"

	if err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !refetched {
		t.Error("successful submit should refetch the parent list")
	}
	if flow.IsOpen() {
		t.Error("successful submit should close the form")
	}
	if flow.ErrorMessage() != "" {
		t.Errorf("ErrorMessage = %q after success, want empty", flow.ErrorMessage())
	}
	if got := flow.Draft(); got.Title != "" || got.Priority != "medium" {
		t.Errorf("draft after success = %+v, want the defaults back", got)
	}
}

func TestSubmitFailureKeepsDraftAndServerMessage(t *testing.T) {
	flow := newTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Category not recognized"})
	})

	draft := flow.Draft()
	draft.Title = "Leaking tap"
	draft.Description = "Ward 3 sink"
	draft.Category = "plumbng"

	if err := flow.Submit(context.Background()); err == nil {
		t.Fatal("submit should fail")
	}
	if got := flow.ErrorMessage(); got != "Category not recognized" {
		t.Errorf("ErrorMessage = %q, want the server's wording verbatim", got)
	}
	if got := flow.Draft(); got.Title != "Leaking tap" || got.Category != "plumbng" {
		t.Errorf("draft after failure = %+v, want it untouched", got)
	}
}

func TestSubmitFailureFallsBackWithoutServerMessage(t *testing.T) {
	flow := newTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	draft := flow.Draft()
	draft.Title = "Leaking tap"
	draft.Description = "Ward 3 sink"
	draft.Category = "plumbing"

	if err := flow.Submit(context.Background()); err == nil {
		t.Fatal("submit should fail")
	}
	if got := flow.ErrorMessage(); got != "Failed to create ticket" {
		t.Errorf("ErrorMessage = %q, want the fallback", got)
	}
}

func TestSubmitRejectsInvalidDraftLocally(t *testing.T) {
	requests := 0
	flow := newTestFlow(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusCreated)
	})

	// Title and description missing.
	flow.Draft().Category = "plumbing"

	if err := flow.Submit(context.Background()); err == nil {
		t.Fatal("submit should fail validation")
	}
	if requests != 0 {
		t.Errorf("invalid draft must not reach the network, backend saw %d requests", requests)
	}
	if flow.ErrorMessage() == "" {
		t.Error("validation failure should set an error message")
	}
}

func TestMergeIDsStampsDraftBeforeSend(t *testing.T) {
	type apptDraft struct {
		PatientID int    `json:"patient_id"`
		Reason    string `json:"reason" validate:"required"`
	}

	var sent apptDraft
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	flow := NewFlow(api.NewClient(srv.URL), "/appointment/appointments", apptDraft{}, "Failed to schedule appointment").
		MergeIDs(func(d *apptDraft) {
			if d.PatientID == 0 {
				d.PatientID = 42
			}
		})
	flow.Draft().Reason = "checkup"

	if err := flow.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sent.PatientID != 42 {
		t.Errorf("sent patient_id = %d, want 42 stamped on by MergeIDs", sent.PatientID)
	}
}

func TestMergeIDsLeaveDraftUntouchedOnFailure(t *testing.T) {
	type apptDraft struct {
		PatientID int    `json:"patient_id"`
		Reason    string `json:"reason" validate:"required"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Slot already taken"})
	}))
	defer srv.Close()

	flow := NewFlow(api.NewClient(srv.URL), "/appointment/appointments", apptDraft{}, "Failed to schedule appointment").
		MergeIDs(func(d *apptDraft) { d.PatientID = 42 })
	flow.Draft().Reason = "checkup"

	if err := flow.Submit(context.Background()); err == nil {
		t.Fatal("submit should fail")
	}
	if got := flow.Draft(); got.PatientID != 0 {
		t.Errorf("draft patient_id = %d after failure, want 0 (stamping must not touch the draft)", got.PatientID)
	}
	if got := flow.ErrorMessage(); got != "Slot already taken" {
		t.Errorf("ErrorMessage = %q, want the server's wording", got)
	}
}
