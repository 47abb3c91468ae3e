package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hospital-ops/client/dashboard"
)

var settingsUpdateFlags struct {
	systemName         string
	maxTicketsPerDay   int
	emailNotifications bool
	autoAssignment     bool
	maintenanceMode    bool
	hoursStart         string
	hoursEnd           string
}

func newSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change system settings (admin)",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current system settings",
		RunE:  runSettingsShow,
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Change system settings; unset flags keep their current value",
		RunE:  runSettingsUpdate,
	}
	update.Flags().StringVar(&settingsUpdateFlags.systemName, "system-name", "", "System display name")
	update.Flags().IntVar(&settingsUpdateFlags.maxTicketsPerDay, "max-tickets", 0, "Daily ticket cap")
	update.Flags().BoolVar(&settingsUpdateFlags.emailNotifications, "email-notifications", false, "Send email notifications")
	update.Flags().BoolVar(&settingsUpdateFlags.autoAssignment, "auto-assignment", false, "Auto-assign new work orders")
	update.Flags().BoolVar(&settingsUpdateFlags.maintenanceMode, "maintenance-mode", false, "Put the system in maintenance mode")
	update.Flags().StringVar(&settingsUpdateFlags.hoursStart, "hours-start", "", "Working hours start, HH:MM")
	update.Flags().StringVar(&settingsUpdateFlags.hoursEnd, "hours-end", "", "Working hours end, HH:MM")

	cmd.AddCommand(show, update)
	return cmd
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	settings, err := a.Settings(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "System name:         %s\n", settings.SystemName)
	fmt.Fprintf(out, "Max tickets per day: %d\n", settings.MaxTicketsPerDay)
	fmt.Fprintf(out, "Working hours:       %s - %s\n", settings.WorkingHours.Start, settings.WorkingHours.End)
	fmt.Fprintf(out, "Email notifications: %t\n", settings.EmailNotifications)
	fmt.Fprintf(out, "Auto assignment:     %t\n", settings.AutoAssignment)
	fmt.Fprintf(out, "Maintenance mode:    %t\n", settings.MaintenanceMode)
	return nil
}

func runSettingsUpdate(cmd *cobra.Command, args []string) error {
	if err := requireRole("admin"); err != nil {
		return err
	}

	a := dashboard.NewAdmin(client)
	ctx := cmd.Context()
	settings, err := a.Settings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("system-name") {
		settings.SystemName = settingsUpdateFlags.systemName
	}
	if flags.Changed("max-tickets") {
		settings.MaxTicketsPerDay = settingsUpdateFlags.maxTicketsPerDay
	}
	if flags.Changed("email-notifications") {
		settings.EmailNotifications = settingsUpdateFlags.emailNotifications
	}
	if flags.Changed("auto-assignment") {
		settings.AutoAssignment = settingsUpdateFlags.autoAssignment
	}
	if flags.Changed("maintenance-mode") {
		settings.MaintenanceMode = settingsUpdateFlags.maintenanceMode
	}
	if flags.Changed("hours-start") {
		settings.WorkingHours.Start = settingsUpdateFlags.hoursStart
	}
	if flags.Changed("hours-end") {
		settings.WorkingHours.End = settingsUpdateFlags.hoursEnd
	}

	if err := a.UpdateSettings(ctx, settings); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Settings updated.")
	return nil
}
