package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/client/thread"
	"hospital-ops/ops-console/internal/render"
)

var ticketCreateFlags struct {
	title           string
	description     string
	category        string
	priority        string
	locationDetails string
	patientImpact   string
	timeSensitivity string
}

func newTicketsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List, create and advance maintenance tickets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tickets visible to your role",
		RunE:  runTicketsList,
	}
	list.Flags().StringVar(&statusFlag, "status", "all", "Filter by status (open, in_progress, closed, all)")
	list.Flags().StringVar(&searchFlag, "search", "", "Substring search over title, description and id")

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a new ticket",
		RunE:  runTicketCreate,
	}
	create.Flags().StringVar(&ticketCreateFlags.title, "title", "", "Ticket title")
	create.Flags().StringVar(&ticketCreateFlags.description, "description", "", "What is wrong")
	create.Flags().StringVar(&ticketCreateFlags.category, "category", "general", "Ticket category")
	create.Flags().StringVar(&ticketCreateFlags.priority, "priority", "", "Priority (low, medium, high, critical)")
	create.Flags().StringVar(&ticketCreateFlags.locationDetails, "location", "", "Room or ward")
	create.Flags().StringVar(&ticketCreateFlags.patientImpact, "impact", "", "Patient impact (none..critical)")
	create.Flags().StringVar(&ticketCreateFlags.timeSensitivity, "time-sensitivity", "", "immediate, within_hour, within_shift, within_day")

	status := &cobra.Command{
		Use:   "status <ticket-id> <new-status>",
		Short: "Move a ticket through its workflow",
		Args:  cobra.ExactArgs(2),
		RunE:  runTicketStatus,
	}

	comment := &cobra.Command{
		Use:   "comment <ticket-id> <text>",
		Short: "Add a comment to a ticket",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runTicketComment,
	}

	attach := &cobra.Command{
		Use:   "attach <ticket-id> <file>",
		Short: "Upload an attachment to a ticket",
		Args:  cobra.ExactArgs(2),
		RunE:  runTicketAttach,
	}

	cmd.AddCommand(list, create, status, comment, attach)
	return cmd
}

// ticketView picks the list view matching the operator's role; each role
// sees a different slice of the system.
func ticketView() (*listview.View[models.Ticket], error) {
	switch sess.Role {
	case "admin":
		return dashboard.NewAdmin(client).Tickets, nil
	case "department":
		return dashboard.NewDepartment(client).Tickets, nil
	case "patient":
		return dashboard.NewPatient(client).Tickets, nil
	default:
		return nil, fmt.Errorf("role %q has no ticket view", sess.Role)
	}
}

func runTicketsList(cmd *cobra.Command, args []string) error {
	view, err := ticketView()
	if err != nil {
		return err
	}
	if err := view.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load tickets: %w", err)
	}
	view.SetStatusFilter(statusFlag)
	view.SetSearch(searchFlag)

	out := cmd.OutOrStdout()
	visible := view.Visible()
	if reason := view.Empty(); reason != listview.NotEmpty {
		render.EmptyState(out, reason, "tickets")
		return nil
	}
	render.Tickets(out, visible)
	render.Counts(out, view.CountsByStatus())
	return nil
}

func runTicketCreate(cmd *cobra.Command, args []string) error {
	switch sess.Role {
	case "department", "admin":
		d := dashboard.NewDepartment(client)
		draft := d.TicketForm.Draft()
		draft.Title = ticketCreateFlags.title
		draft.Description = ticketCreateFlags.description
		draft.Category = ticketCreateFlags.category
		draft.Priority = ticketCreateFlags.priority
		draft.LocationDetails = ticketCreateFlags.locationDetails
		draft.PatientImpact = ticketCreateFlags.patientImpact
		draft.TimeSensitivity = ticketCreateFlags.timeSensitivity
		if err := d.TicketForm.Submit(cmd.Context()); err != nil {
			return fmt.Errorf("%s", d.TicketForm.ErrorMessage())
		}
	case "patient":
		p := dashboard.NewPatient(client)
		draft := p.TicketForm.Draft()
		draft.Title = ticketCreateFlags.title
		draft.Description = ticketCreateFlags.description
		draft.Category = ticketCreateFlags.category
		draft.Priority = ticketCreateFlags.priority
		if err := p.TicketForm.Submit(cmd.Context()); err != nil {
			return fmt.Errorf("%s", p.TicketForm.ErrorMessage())
		}
	default:
		return fmt.Errorf("role %q cannot create tickets", sess.Role)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Ticket created.")
	return nil
}

func runTicketStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ticket id %q", args[0])
	}
	next := models.TicketStatus(args[1])

	ctx := cmd.Context()
	switch sess.Role {
	case "admin":
		a := dashboard.NewAdmin(client)
		ticket, err := findTicket(ctx, a.Tickets, id)
		if err != nil {
			return err
		}
		if err := a.SetTicketStatus(ctx, ticket, next); err != nil {
			return fmt.Errorf("allowed from %s: %s: %w",
				ticket.Status, strings.Join(a.Workflow.Allowed(string(ticket.Status)), ", "), err)
		}
	case "department":
		d := dashboard.NewDepartment(client)
		ticket, err := findTicket(ctx, d.Tickets, id)
		if err != nil {
			return err
		}
		if err := d.SetTicketStatus(ctx, ticket, next); err != nil {
			return fmt.Errorf("allowed from %s: %s: %w",
				ticket.Status, strings.Join(d.Workflow.Allowed(string(ticket.Status)), ", "), err)
		}
	default:
		return fmt.Errorf("role %q cannot change ticket status", sess.Role)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ticket %d -> %s\n", id, next)
	return nil
}

func findTicket(ctx context.Context, view *listview.View[models.Ticket], id int) (models.Ticket, error) {
	if err := view.Load(ctx); err != nil {
		return models.Ticket{}, fmt.Errorf("failed to load tickets: %w", err)
	}
	for _, t := range view.Visible() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, fmt.Errorf("ticket %d: %w", id, models.ErrNotFound)
}

// ticketThread resolves the role-appropriate sub-thread for one ticket.
func ticketThread(ticketID int) (*thread.Thread, error) {
	switch sess.Role {
	case "department", "admin":
		return dashboard.NewDepartment(client).TicketThread(ticketID), nil
	default:
		return nil, fmt.Errorf("role %q cannot work with ticket threads", sess.Role)
	}
}

func runTicketComment(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ticket id %q", args[0])
	}
	text := strings.Join(args[1:], " ")

	t, err := ticketThread(id)
	if err != nil {
		return err
	}
	if err := t.AddComment(cmd.Context(), text); err != nil {
		return err
	}

	render.Comments(cmd.OutOrStdout(), t.Comments())
	return nil
}

func runTicketAttach(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ticket id %q", args[0])
	}

	file, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	t, err := ticketThread(id)
	if err != nil {
		return err
	}
	if err := t.UploadAttachment(cmd.Context(), filepath.Base(args[1]), file, info.Size()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%d bytes)\n", filepath.Base(args[1]), info.Size())
	return nil
}
