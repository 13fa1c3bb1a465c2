package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Show the default rates for each complexity tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderPresets())
			return nil
		},
	}
}
