package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zondalab/go-windreport/pkg/reports"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available report documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range reports.DefaultRegistry().List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
