package cli

import (
	"fmt"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage saved rate profiles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Profiles == nil {
				return errProfilesUnavailable
			}
			return nil
		},
	}

	cmd.AddCommand(
		newProfileSaveCmd(app),
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileRenameCmd(app),
		newProfileDeleteCmd(app),
	)

	return cmd
}

func newProfileSaveCmd(app *App) *cobra.Command {
	var (
		complexity string
		overrides  map[string]string
		ratesFile  string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a rate table under a name, replacing any profile with that name",
		Example: `  folio profile save atlas --complexity complex --rate design=9
  folio profile save house-style --rates-file rates.yaml --notes "2026 contract"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := domain.ParseComplexity(complexity)
			if err != nil {
				return err
			}
			rates := domain.PresetRates(base)
			if ratesFile != "" {
				if rates, err = loadRatesFile(ratesFile, rates); err != nil {
					return err
				}
			}
			if rates, err = applyRateOverrides(rates, overrides); err != nil {
				return err
			}

			p, err := app.Profiles.Save(cmd.Context(), args[0], base, rates, notes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s\n", formatter.Bold(p.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&complexity, "complexity", string(domain.ComplexitySimple), "Preset the profile starts from: simple or complex")
	addRateFlags(cmd.Flags(), &overrides, &ratesFile)
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved rate profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderProfileList(profiles))
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show a profile's rates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderProfile(*p))
			return nil
		},
	}
}

func newProfileRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], formatter.Bold(p.Name))
			return nil
		},
	}
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}
}
