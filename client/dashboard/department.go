package dashboard

import (
	"context"
	"fmt"

	"hospital-ops/client/api"
	"hospital-ops/client/form"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/thread"
	"hospital-ops/client/workflow"
)

// TicketCreate is the nursing-department new-ticket payload. Priority may be
// escalated server-side for emergency equipment; the client does not predict
// that and shows whatever the refetch returns.
type TicketCreate struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Category         string `json:"category" validate:"required"`
	Priority         string `json:"priority,omitempty"`
	PatientID        int    `json:"patient_id,omitempty"`
	LocationDetails  string `json:"location_details,omitempty"`
	EquipmentID      string `json:"equipment_id,omitempty"`
	PatientImpact    string `json:"patient_impact,omitempty"`
	PatientsAffected int    `json:"patients_affected,omitempty"`
	TimeSensitivity  string `json:"time_sensitivity,omitempty"`
}

// Department is the nursing-department view: the department's own tickets,
// a strict ticket workflow, the create form and per-ticket comment threads.
type Department struct {
	client *api.Client

	Tickets    *listview.View[models.Ticket]
	Workflow   *workflow.Engine
	TicketForm *form.Flow[TicketCreate]
}

func NewDepartment(client *api.Client) *Department {
	d := &Department{
		client:   client,
		Workflow: workflow.NewTicketEngine(workflow.PolicyStrict),
	}
	d.Tickets = listview.New(func(ctx context.Context) ([]models.Ticket, error) {
		var tickets []models.Ticket
		err := client.Get(ctx, "/department/tickets", &tickets)
		return tickets, err
	})
	d.TicketForm = form.NewFlow(client, "/department/ticket/create", TicketCreate{}, "Failed to create ticket").
		OnSuccess(d.Tickets.Load)
	return d
}

func (d *Department) SetTicketStatus(ctx context.Context, ticket models.Ticket, next models.TicketStatus) error {
	path := fmt.Sprintf("/department/ticket/%d/status", ticket.ID)
	return d.Workflow.Transition(ctx, d.client, path, string(ticket.Status), string(next), nil, d.Tickets.Load)
}

// TicketThread opens the comment/attachment sub-thread for one ticket.
func (d *Department) TicketThread(ticketID int) *thread.Thread {
	return thread.New(d.client,
		fmt.Sprintf("/department/ticket/%d/comment", ticketID),
		fmt.Sprintf("/department/ticket/%d/comments", ticketID),
		fmt.Sprintf("/department/ticket/%d/attachment", ticketID),
		fmt.Sprintf("/department/ticket/%d", ticketID),
	)
}

func (d *Department) Templates(ctx context.Context) ([]models.TicketTemplate, error) {
	var templates []models.TicketTemplate
	err := d.client.Get(ctx, "/department/ticket-templates", &templates)
	return templates, err
}
