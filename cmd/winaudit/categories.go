package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ancients-collective/winaudit/internal/catalog"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List audit categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range catalog.All() {
				fmt.Fprintf(w, "  %-10s %-10s %d checks\n", c.ID, c.Name, len(c.Rules))
			}
			return nil
		},
	}
}
