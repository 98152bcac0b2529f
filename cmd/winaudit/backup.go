package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ancients-collective/winaudit/internal/catalog"
	"github.com/ancients-collective/winaudit/internal/engine"
	"github.com/ancients-collective/winaudit/internal/output"
	"github.com/ancients-collective/winaudit/internal/probe"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <path>",
		Short: "Record every value the audit reads into a YAML snapshot",
		Long: `Runs every check against the live system and writes the values it read
to a YAML snapshot. Nothing is modified. Replay the snapshot on any
machine with 'winaudit --snapshot <path>'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(cmd.Context(), cmd, args[0], probe.NewSystem())
		},
	}
}

// runBackup records what every rule reads through src and writes it to path.
func runBackup(ctx context.Context, cmd *cobra.Command, path string, src probe.Prober) error {
	if err := output.ValidateOutputPath(path); err != nil {
		return err
	}

	rec := probe.NewRecorder(src)
	if _, err := engine.New(catalog.All(), rec).Run(ctx, nil); err != nil {
		return err
	}

	host, _ := os.Hostname()
	if err := probe.WriteSnapshot(path, rec.Snapshot(host)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  ✓ Snapshot of %d values written to %s\n", rec.Len(), path)
	return nil
}
