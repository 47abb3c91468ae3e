package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
	"hospital-ops/client/listview"
	"hospital-ops/ops-console/internal/render"
)

var casualAddFlags struct {
	name       string
	email      string
	phone      string
	department string
}

func newCasualsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "casuals",
		Short: "Manage the casual worker roster (admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List casual workers",
		RunE:  runCasualsList,
	}
	list.Flags().StringVar(&searchFlag, "search", "", "Substring search over name and department")

	add := &cobra.Command{
		Use:   "add",
		Short: "Register a casual worker",
		RunE:  runCasualAdd,
	}
	add.Flags().StringVar(&casualAddFlags.name, "name", "", "Full name")
	add.Flags().StringVar(&casualAddFlags.email, "email", "", "Email address")
	add.Flags().StringVar(&casualAddFlags.phone, "phone", "", "Phone number")
	add.Flags().StringVar(&casualAddFlags.department, "department", "", "Department")

	remove := &cobra.Command{
		Use:   "remove <worker-id>",
		Short: "Remove a casual worker",
		Args:  cobra.ExactArgs(1),
		RunE:  runCasualRemove,
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func runCasualsList(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	if err := a.Casuals.Load(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load casual workers: %w", err)
	}
	a.Casuals.SetSearch(searchFlag)

	out := cmd.OutOrStdout()
	if reason := a.Casuals.Empty(); reason != listview.NotEmpty {
		render.EmptyState(out, reason, "casual workers")
		return nil
	}
	render.Casuals(out, a.Casuals.Visible())
	return nil
}

func runCasualAdd(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	draft := a.CasualForm.Draft()
	draft.Name = casualAddFlags.name
	draft.Email = casualAddFlags.email
	draft.Phone = casualAddFlags.phone
	draft.Department = casualAddFlags.department

	if err := a.CasualForm.Submit(cmd.Context()); err != nil {
		return fmt.Errorf("%s", a.CasualForm.ErrorMessage())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Casual worker added.")
	return nil
}

func runCasualRemove(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid worker id %q", args[0])
	}

	a := dashboard.NewAdmin(client)
	if err := a.RemoveCasual(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Casual worker %d removed.\n", id)
	return nil
}
