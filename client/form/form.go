// Package form implements the create flow shared by ticket creation, worker
// registration and appointment scheduling: hold a draft, POST it, and only
// reset the draft when the server accepted it.
package form

import (
	"context"
	"fmt"
	"strings"

	"hospital-ops/client/api"
)

// Flow is one create form. T is the request payload; `validate` tags on it
// stand in for the HTML required attributes of the source views.
type Flow[T any] struct {
	client   *api.Client
	path     string
	defaults T
	fallback string

	draft   T
	open    bool
	lastErr string

	// refetch reloads the parent list after a successful create.
	refetch func(ctx context.Context) error
	// merge stamps externally supplied ids (patient_id, department_id)
	// onto the draft just before submission.
	merge func(draft *T)
}

func NewFlow[T any](client *api.Client, path string, defaults T, fallback string) *Flow[T] {
	return &Flow[T]{
		client:   client,
		path:     path,
		defaults: defaults,
		draft:    defaults,
		fallback: fallback,
	}
}

func (f *Flow[T]) OnSuccess(refetch func(ctx context.Context) error) *Flow[T] {
	f.refetch = refetch
	return f
}

func (f *Flow[T]) MergeIDs(merge func(draft *T)) *Flow[T] {
	f.merge = merge
	return f
}

// Draft returns a pointer to the working copy for field edits.
func (f *Flow[T]) Draft() *T { return &f.draft }

func (f *Flow[T]) Open()        { f.open = true }
func (f *Flow[T]) IsOpen() bool { return f.open }

// ErrorMessage is the message from the last failed submit, empty after a
// success.
func (f *Flow[T]) ErrorMessage() string { return f.lastErr }

// Submit validates the draft, POSTs it, and on success resets the form,
// closes the panel and refetches the parent list. On failure the draft is
// left exactly as the user typed it and the server's error message is kept
// verbatim when there is one, else the flow's fallback string.
func (f *Flow[T]) Submit(ctx context.Context) error {
	if err := getValidator().Struct(&f.draft); err != nil {
		f.lastErr = strings.Join(ParseErrors(err), "; ")
		return fmt.Errorf("%s: %w", f.lastErr, err)
	}

	// Stamped ids go onto a copy, never the draft itself, so a failed
	// submit hands back exactly what the user typed.
	payload := f.draft
	if f.merge != nil {
		f.merge(&payload)
	}

	if err := f.client.Post(ctx, f.path, payload, nil); err != nil {
		f.lastErr = api.ServerMessage(err, f.fallback)
		return err
	}

	f.draft = f.defaults
	f.open = false
	f.lastErr = ""

	if f.refetch != nil {
		return f.refetch(ctx)
	}
	return nil
}
