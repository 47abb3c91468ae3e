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
	"hospital-ops/ops-console/internal/render"
)

var (
	categoryFlag string
	hoursFlag    float64
	dueFlag      bool
)

func newWorkOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workorders",
		Short: "List and advance maintenance work orders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List work orders for your trade",
		RunE:  runWorkOrdersList,
	}
	list.Flags().StringVar(&statusFlag, "status", "all", "Filter by status")
	list.Flags().StringVar(&searchFlag, "search", "", "Substring search over title, description and id")
	list.Flags().StringVar(&categoryFlag, "category", "", "Override the category filter")

	show := &cobra.Command{
		Use:   "show <work-order-id>",
		Short: "Show one work order with its comments and attachments",
		Args:  cobra.ExactArgs(1),
		RunE:  runWorkOrderShow,
	}

	status := &cobra.Command{
		Use:   "status <work-order-id> <new-status>",
		Short: "Advance a work order through its workflow",
		Args:  cobra.ExactArgs(2),
		RunE:  runWorkOrderStatus,
	}
	status.Flags().Float64Var(&hoursFlag, "hours", 0, "Actual hours, logged on completed/closed")

	assign := &cobra.Command{
		Use:   "assign <work-order-id> <username>",
		Short: "Assign a work order to a technician",
		Args:  cobra.ExactArgs(2),
		RunE:  runWorkOrderAssign,
	}

	priority := &cobra.Command{
		Use:   "priority <work-order-id> <priority>",
		Short: "Change a work order's priority",
		Args:  cobra.ExactArgs(2),
		RunE:  runWorkOrderPriority,
	}

	comment := &cobra.Command{
		Use:   "comment <work-order-id> <text>",
		Short: "Add a comment to a work order",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runWorkOrderComment,
	}

	attach := &cobra.Command{
		Use:   "attach <work-order-id> <file>",
		Short: "Upload an attachment to a work order",
		Args:  cobra.ExactArgs(2),
		RunE:  runWorkOrderAttach,
	}

	equipment := &cobra.Command{
		Use:   "equipment",
		Short: "List tracked equipment for your trade",
		RunE:  runWorkOrderEquipment,
	}
	equipment.Flags().StringVar(&categoryFlag, "category", "", "Override the category filter")
	equipment.Flags().BoolVar(&dueFlag, "due", false, "Only equipment due for preventive maintenance")

	maintenance := &cobra.Command{
		Use:   "maintenance <equipment-id> <notes>",
		Short: "Record a completed maintenance visit",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runWorkOrderMaintenance,
	}

	cmd.AddCommand(list, show, status, assign, priority, comment, attach, equipment, maintenance)
	return cmd
}

func runWorkOrderEquipment(cmd *cobra.Command, args []string) error {
	tech, err := technicianDashboard()
	if err != nil {
		return err
	}
	if tech == nil {
		tech = dashboard.NewTechnician(client, "")
	}

	ctx := cmd.Context()
	var equipment []models.Equipment
	if dueFlag {
		equipment, err = tech.EquipmentDue(ctx)
	} else {
		equipment, err = tech.Equipment(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load equipment: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(equipment) == 0 {
		fmt.Fprintln(out, "No equipment yet.")
		return nil
	}
	render.Equipment(out, equipment)
	return nil
}

func runWorkOrderMaintenance(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid equipment id %q", args[0])
	}

	tech, err := technicianDashboard()
	if err != nil {
		return err
	}
	if tech == nil {
		tech = dashboard.NewTechnician(client, "")
	}

	if err := tech.RecordMaintenance(cmd.Context(), id, strings.Join(args[1:], " ")); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Maintenance recorded for equipment %d.\n", id)
	return nil
}

// technicianDashboard maps the session role onto a trade-scoped view.
// Admins get an unscoped one.
func technicianDashboard() (*dashboard.Technician, error) {
	if categoryFlag != "" {
		return dashboard.NewTechnician(client, categoryFlag), nil
	}
	switch sess.Role {
	case "electrician":
		return dashboard.NewElectrician(client), nil
	case "mechanical":
		return dashboard.NewMechanical(client), nil
	case "admin", "department":
		return dashboard.NewTechnician(client, ""), nil
	case "casual":
		return nil, nil
	default:
		return nil, fmt.Errorf("role %q has no work order view", sess.Role)
	}
}

func runWorkOrdersList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var view *listview.View[models.WorkOrder]
	tech, err := technicianDashboard()
	if err != nil {
		return err
	}
	if tech != nil {
		view = tech.WorkOrders
	} else {
		view = dashboard.NewCasual(client, sess.UserID).WorkOrders
	}

	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to load work orders: %w", err)
	}
	view.SetStatusFilter(statusFlag)
	view.SetSearch(searchFlag)

	if reason := view.Empty(); reason != listview.NotEmpty {
		render.EmptyState(out, reason, "work orders")
		return nil
	}
	render.WorkOrders(out, view.Visible())
	render.Counts(out, view.CountsByStatus())
	return nil
}

func runWorkOrderShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
	}

	tech, err := technicianDashboard()
	if err != nil {
		return err
	}
	if tech == nil {
		tech = dashboard.NewTechnician(client, "")
	}

	order, err := tech.WorkOrder(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load work order: %w", err)
	}

	out := cmd.OutOrStdout()
	render.WorkOrders(out, []models.WorkOrder{order})
	if len(order.Comments) > 0 {
		fmt.Fprintln(out, "\nComments:")
		render.Comments(out, order.Comments)
	}
	for _, a := range order.Attachments {
		fmt.Fprintf(out, "attachment: %s (%.1f KB, %s)\n", a.Filename, float64(a.FileSize)/1024, a.FileType)
	}
	return nil
}

func loadWorkOrder(ctx context.Context, tech *dashboard.Technician, id int) (models.WorkOrder, error) {
	order, err := tech.WorkOrder(ctx, id)
	if err != nil {
		return models.WorkOrder{}, fmt.Errorf("failed to load work order: %w", err)
	}
	return order, nil
}

func runWorkOrderStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
	}
	next := models.WorkOrderStatus(args[1])

	tech, err := technicianDashboard()
	if err != nil {
		return err
	}
	if tech == nil {
		tech = dashboard.NewTechnician(client, "")
	}

	ctx := cmd.Context()
	order, err := loadWorkOrder(ctx, tech, id)
	if err != nil {
		return err
	}

	var hours *float64
	if cmd.Flags().Changed("hours") {
		hours = &hoursFlag
	}

	if err := tech.SetStatus(ctx, order, next, hours); err != nil {
		return fmt.Errorf("allowed from %s: %s: %w",
			order.Status, strings.Join(tech.Workflow.Allowed(string(order.Status)), ", "), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Work order %d -> %s\n", id, next)
	return nil
}

func runWorkOrderAssign(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin", "department"); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
	}

	tech := dashboard.NewTechnician(client, "")
	if err := tech.Assign(cmd.Context(), id, args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Work order %d assigned to %s\n", id, args[1])
	return nil
}

func runWorkOrderPriority(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin", "department"); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
	}

	tech := dashboard.NewTechnician(client, "")
	if err := tech.SetPriority(cmd.Context(), id, models.Priority(args[1])); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Work order %d priority -> %s\n", id, args[1])
	return nil
}

func runWorkOrderComment(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
	}

	tech := dashboard.NewTechnician(client, "")
	t := tech.Thread(id)
	if err := t.AddComment(cmd.Context(), strings.Join(args[1:], " ")); err != nil {
		return err
	}
	render.Comments(cmd.OutOrStdout(), t.Comments())
	return nil
}

func runWorkOrderAttach(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid work order id %q", args[0])
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

	tech := dashboard.NewTechnician(client, "")
	t := tech.Thread(id)
	if err := t.UploadAttachment(cmd.Context(), filepath.Base(args[1]), file, info.Size()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%d bytes)\n", filepath.Base(args[1]), info.Size())
	return nil
}
