// Package dashboard wires the generic pieces (api client, workflow engine,
// list view, thread, form) into one facade per role. Each facade owns its
// own copies of fetched data; two dashboards never share state.
package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"hospital-ops/client/api"
	"hospital-ops/client/form"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/workflow"
)

// CasualCreate is the new-worker form payload.
type CasualCreate struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Department string `json:"department" validate:"required"`
}

// Admin sees every ticket in the system, the aggregate stats and the casual
// worker roster. Its ticket workflow runs under the admin override policy:
// any status button may be used from any current status.
type Admin struct {
	client *api.Client

	Tickets    *listview.View[models.Ticket]
	Casuals    *listview.View[models.CasualWorker]
	Workflow   *workflow.Engine
	CasualForm *form.Flow[CasualCreate]
}

func NewAdmin(client *api.Client) *Admin {
	a := &Admin{
		client:   client,
		Workflow: workflow.NewTicketEngine(workflow.PolicyAdminOverride),
	}
	a.Tickets = listview.New(func(ctx context.Context) ([]models.Ticket, error) {
		var tickets []models.Ticket
		err := client.Get(ctx, "/admin/tickets", &tickets)
		return tickets, err
	})
	a.Casuals = listview.New(func(ctx context.Context) ([]models.CasualWorker, error) {
		var workers []models.CasualWorker
		err := client.Get(ctx, "/admin/casuals", &workers)
		return workers, err
	})
	a.CasualForm = form.NewFlow(client, "/admin/casuals", CasualCreate{}, "Failed to add casual worker").
		OnSuccess(a.Casuals.Load)
	return a
}

func (a *Admin) Stats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	err := a.client.Get(ctx, "/admin/stats", &stats)
	return stats, err
}

func (a *Admin) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := a.client.Get(ctx, "/admin/users", &users)
	return users, err
}

// SetTicketStatus moves one ticket and refetches the list, so the summary
// counts recompute from fresh server data.
func (a *Admin) SetTicketStatus(ctx context.Context, ticket models.Ticket, next models.TicketStatus) error {
	path := fmt.Sprintf("/admin/ticket/%d/status", ticket.ID)
	return a.Workflow.Transition(ctx, a.client, path, string(ticket.Status), string(next), nil, a.Tickets.Load)
}

func (a *Admin) Settings(ctx context.Context) (models.AdminSettings, error) {
	var settings models.AdminSettings
	err := a.client.Get(ctx, "/admin/settings", &settings)
	return settings, err
}

// UpdateSettings writes the whole settings record back, the same way the
// settings page saves it.
func (a *Admin) UpdateSettings(ctx context.Context, settings models.AdminSettings) error {
	if err := a.client.Put(ctx, "/admin/settings", settings, nil); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

// Report fetches the aggregate report, optionally bounded to a date range.
func (a *Admin) Report(ctx context.Context, start, end string) (models.AdminReport, error) {
	path := "/admin/reports"
	if start != "" && end != "" {
		q := url.Values{}
		q.Set("start", start)
		q.Set("end", end)
		path += "?" + q.Encode()
	}

	var report models.AdminReport
	err := a.client.Get(ctx, path, &report)
	return report, err
}

// ExportReport downloads the report as a pdf or csv blob.
func (a *Admin) ExportReport(ctx context.Context, format, start, end string) ([]byte, error) {
	q := url.Values{}
	q.Set("format", format)
	if start != "" && end != "" {
		q.Set("start", start)
		q.Set("end", end)
	}
	return a.client.GetRaw(ctx, "/admin/reports/export?"+q.Encode())
}

func (a *Admin) RemoveCasual(ctx context.Context, id int) error {
	if err := a.client.Delete(ctx, fmt.Sprintf("/admin/casuals/%d", id)); err != nil {
		return fmt.Errorf("remove casual worker: %w", err)
	}
	return a.Casuals.Load(ctx)
}
