package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand creates the winaudit command tree. Running the root
// command without a subcommand performs an audit.
func newRootCommand() *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "winaudit",
		Short: "Audit Windows configuration for performance, stability and security",
		Long: `winaudit reads registry values, WMI properties and service states,
classifies each as Optimal, Warning, Issue or Info, and prints a report.
It never changes system state.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, opts)
		},
	}
	addAuditFlags(cmd, opts)

	cmd.AddCommand(newAuditCommand())
	cmd.AddCommand(newCategoriesCommand())
	cmd.AddCommand(newBackupCommand())
	cmd.AddCommand(newApplyCommand())
	cmd.AddCommand(newRestoreCommand())

	return cmd
}
