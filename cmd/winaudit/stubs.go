package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// notImplemented reports an unavailable subcommand and fails with exit code 1.
func notImplemented(cmd *cobra.Command, _ []string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ '%s' is not implemented; winaudit is read-only\n", cmd.Name())
	return &exitError{code: 1}
}

func newApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [profile]",
		Short: "Apply an optimization profile (not implemented)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  notImplemented,
	}
}

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <path>",
		Short: "Restore settings from a backup (not implemented)",
		Args:  cobra.ExactArgs(1),
		RunE:  notImplemented,
	}
}
