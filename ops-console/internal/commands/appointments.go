package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
	"hospital-ops/client/listview"
	"hospital-ops/client/models"
	"hospital-ops/ops-console/internal/render"
)

var apptScheduleFlags struct {
	departmentID int
	date         string
	time         string
	apptType     string
	reason       string
	duration     int
	priority     string
	notes        string
}

var apptDateFlag string

func newAppointmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "View and schedule appointments (patient)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your appointments",
		RunE:  runAppointmentsList,
	}
	list.Flags().StringVar(&statusFlag, "status", "all", "Filter by status")
	list.Flags().StringVar(&searchFlag, "search", "", "Substring search")

	availability := &cobra.Command{
		Use:   "availability <department-id>",
		Short: "Show bookable slots for a department on a date",
		Args:  cobra.ExactArgs(1),
		RunE:  runAppointmentAvailability,
	}
	availability.Flags().StringVar(&apptDateFlag, "date", "", "Date, YYYY-MM-DD")

	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a new appointment",
		RunE:  runAppointmentSchedule,
	}
	schedule.Flags().IntVar(&apptScheduleFlags.departmentID, "department-id", 0, "Department id")
	schedule.Flags().StringVar(&apptScheduleFlags.date, "date", "", "Date, YYYY-MM-DD")
	schedule.Flags().StringVar(&apptScheduleFlags.time, "time", "", "Time, HH:MM")
	schedule.Flags().StringVar(&apptScheduleFlags.apptType, "type", "", "Appointment type")
	schedule.Flags().StringVar(&apptScheduleFlags.reason, "reason", "", "Reason for the visit")
	schedule.Flags().IntVar(&apptScheduleFlags.duration, "duration", 0, "Duration in minutes")
	schedule.Flags().StringVar(&apptScheduleFlags.priority, "priority", "", "Priority")
	schedule.Flags().StringVar(&apptScheduleFlags.notes, "notes", "", "Additional notes")

	cancel := &cobra.Command{
		Use:   "cancel <appointment-id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE:  runAppointmentCancel,
	}

	cmd.AddCommand(list, availability, schedule, cancel)
	return cmd
}

func runAppointmentsList(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}

	p := dashboard.NewPatient(client)
	if err := p.Appointments.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}
	p.Appointments.SetStatusFilter(statusFlag)
	p.Appointments.SetSearch(searchFlag)

	out := cmd.OutOrStdout()
	if reason := p.Appointments.Empty(); reason != listview.NotEmpty {
		render.EmptyState(out, reason, "appointments")
		return nil
	}
	render.Appointments(out, p.Appointments.Visible())
	render.Counts(out, p.Appointments.CountsByStatus())
	return nil
}

func runAppointmentAvailability(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}
	departmentID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid department id %q", args[0])
	}
	if apptDateFlag == "" {
		return fmt.Errorf("--date is required")
	}

	p := dashboard.NewPatient(client)
	slots, err := p.Availability(cmd.Context(), departmentID, apptDateFlag)
	if err != nil {
		return fmt.Errorf("failed to load availability: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(slots) == 0 {
		fmt.Fprintln(out, "No free slots on that date.")
		return nil
	}
	for _, slot := range slots {
		if !slot.Available {
			continue
		}
		fmt.Fprintf(out, "%s %s\n", slot.Date, slot.Time)
	}
	return nil
}

func runAppointmentSchedule(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}

	p := dashboard.NewPatient(client)
	if err := p.LoadProfile(cmd.Context()); err != nil {
		return err
	}

	draft := p.AppointmentForm.Draft()
	draft.DepartmentID = apptScheduleFlags.departmentID
	draft.AppointmentDate = apptScheduleFlags.date
	draft.AppointmentTime = apptScheduleFlags.time
	draft.AppointmentType = apptScheduleFlags.apptType
	draft.Reason = apptScheduleFlags.reason
	draft.DurationMinutes = apptScheduleFlags.duration
	draft.Priority = apptScheduleFlags.priority
	draft.Notes = apptScheduleFlags.notes

	if err := p.AppointmentForm.Submit(cmd.Context()); err != nil {
		return fmt.Errorf("%s", p.AppointmentForm.ErrorMessage())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Appointment scheduled.")
	return nil
}

func runAppointmentCancel(cmd *cobra.Command, args []string) error {
	if err := requireRole("patient"); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid appointment id %q", args[0])
	}

	p := dashboard.NewPatient(client)
	if err := p.Appointments.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	var appt models.Appointment
	found := false
	for _, a := range p.Appointments.Visible() {
		if a.ID == id {
			appt = a
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("appointment %d not found", id)
	}

	if err := p.CancelAppointment(cmd.Context(), appt); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Appointment %d cancelled.\n", id)
	return nil
}
