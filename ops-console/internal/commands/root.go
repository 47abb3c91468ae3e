// Package commands is the console's cobra command tree. Every command works
// through the same client toolkit the browser dashboards are built from.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hospital-ops/client/api"
	"hospital-ops/ops-console/internal/config"
	"hospital-ops/ops-console/internal/session"
)

var (
	cfg    *config.Config
	sess   *session.Session
	client *api.Client

	searchFlag string
	statusFlag string
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "ops-console",
		Short:             "Hospital maintenance operations console",
		Long:              `Terminal console for the hospital maintenance system: tickets, work orders, appointments and casual workers, scoped to the role in your session token.`,
		SilenceUsage:      true,
		PersistentPreRunE: initSession,
	}

	root.AddCommand(
		newTicketsCommand(),
		newWorkOrdersCommand(),
		newCasualsCommand(),
		newAppointmentsCommand(),
		newPatientCommand(),
		newStatsCommand(),
		newSettingsCommand(),
		newReportsCommand(),
		newWhoamiCommand(),
	)

	return root
}

func initSession(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sess, err = session.Load(cfg.SessionToken, cfg.JWTSecret)
	if err != nil {
		return err
	}

	client = api.NewClient(cfg.GatewayURL)
	client.SetToken(sess.Token)
	return nil
}

// requireRole guards a command behind the roles that may run it.
func requireRole(roles ...string) error {
	for _, r := range roles {
		if sess.Role == r {
			return nil
		}
	}
	return fmt.Errorf("role %q cannot run this command", sess.Role)
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity from the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "user: %s\trole: %s\n", sess.UserID, sess.Role)
			return nil
		},
	}
}
