// Package render prints entities as terminal tables. Each list ends with
// the same per-status counts the dashboard summary cards show.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"hospital-ops/client/listview"
	"hospital-ops/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func Tickets(w io.Writer, tickets []models.Ticket) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tCATEGORY\tDEPARTMENT\tASSIGNED")
	for _, t := range tickets {
		assigned := "-"
		if t.AssignedTo != nil {
			assigned = *t.AssignedTo
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Status, t.Priority, t.Category, t.Department, assigned)
	}
	tw.Flush()
}

func WorkOrders(w io.Writer, orders []models.WorkOrder) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tCATEGORY\tLOCATION\tASSIGNED\tHOURS")
	for _, o := range orders {
		assigned := "-"
		if o.AssignedTo != nil {
			assigned = *o.AssignedTo
		}
		hours := "-"
		if o.ActualHours != nil {
			hours = fmt.Sprintf("%.1f", *o.ActualHours)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.Title, o.Status, o.Priority, o.Category, o.Location, assigned, hours)
	}
	tw.Flush()
}

func Casuals(w io.Writer, workers []models.CasualWorker) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tDEPARTMENT")
	for _, c := range workers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.Department)
	}
	tw.Flush()
}

func Appointments(w io.Writer, appts []models.Appointment) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTYPE\tSTATUS\tREASON")
	for _, a := range appts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.AppointmentDate, a.AppointmentTime, a.AppointmentType, a.Status, a.Reason)
	}
	tw.Flush()
}

func Comments(w io.Writer, comments []models.Comment) {
	for _, c := range comments {
		fmt.Fprintf(w, "[%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.User, c.Comment)
	}
}

func Stats(w io.Writer, stats models.AdminStats) {
	tw := newTable(w)
	fmt.Fprintln(tw, "PATIENTS\tDEPARTMENTS\tTICKETS\tCASUALS\tPENDING\tASSIGNED\tRESOLVED")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
		stats.Patients, stats.Departments, stats.Tickets, stats.CasualWorkers,
		stats.Pending, stats.Assigned, stats.Resolved)
	tw.Flush()
}

func Equipment(w io.Writer, equipment []models.Equipment) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLOCATION\tSCHEDULE\tNEXT MAINTENANCE")
	for _, e := range equipment {
		next := "-"
		if e.NextMaintenance != nil {
			next = e.NextMaintenance.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Name, e.Category, e.Location, e.MaintenanceSchedule, next)
	}
	tw.Flush()
}

func Report(w io.Writer, report models.AdminReport) {
	tw := newTable(w)
	fmt.Fprintln(tw, "TOTAL\tRESOLVED\tPENDING\tAVG RESOLUTION")
	fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n",
		report.TotalTickets, report.ResolvedTickets, report.PendingTickets, report.AvgResolutionTime)
	tw.Flush()

	if len(report.DepartmentStats) > 0 {
		fmt.Fprintln(w, "\nBy department:")
		dt := newTable(w)
		fmt.Fprintln(dt, "DEPARTMENT\tTICKETS\tRESOLVED")
		for _, d := range report.DepartmentStats {
			fmt.Fprintf(dt, "%s\t%d\t%d\n", d.Department, d.Tickets, d.Resolved)
		}
		dt.Flush()
	}
	for _, a := range report.RecentActivity {
		fmt.Fprintf(w, "[%s] %s\n", a.Timestamp.Format("2006-01-02 15:04"), a.Description)
	}
}

// Counts prints the per-status tallies under a list.
func Counts(w io.Writer, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		parts = append(parts, fmt.Sprintf("%s: %d", s, counts[s]))
	}
	fmt.Fprintln(w, strings.Join(parts, "  "))
}

// EmptyState words the empty list the way the dashboards do, telling
// "nothing here yet" apart from "nothing matches the filter".
func EmptyState(w io.Writer, reason listview.EmptyReason, entity string) {
	switch reason {
	case listview.NoData:
		fmt.Fprintf(w, "No %s yet.\n", entity)
	case listview.NoMatch:
		fmt.Fprintf(w, "No %s match the current filter.\n", entity)
	}
}
