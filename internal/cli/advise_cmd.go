package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAdviseCmd(app *App) *cobra.Command {
	var (
		in    inputFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Ask the language model for advice on a timeline",
		Long: `Calculates the timeline for the given inputs and asks the configured
provider for three points: one schedule risk, one staffing change and one
efficiency suggestion.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Advisor == nil {
				return errAdviceUnavailable
			}
			d, err := in.buildDraft(cmd.Context(), app)
			if err != nil {
				return err
			}
			if in.interactive {
				if !app.interactive() {
					return errNeedsTerminal
				}
				if err := runDraftWizard(d); err != nil {
					return err
				}
			}

			project, team, result := d.Project(), d.Team(), d.Result()
			req := advisor.Request{Project: &project, Team: &team, Results: &result}

			if app.interactive() && !plain {
				final, err := tea.NewProgram(newAdviseModel(cmd.Context(), app.Advisor, req)).Run()
				if err != nil {
					return err
				}
				if m, ok := final.(adviseModel); ok && m.state().Phase == advisor.PhaseError {
					return errors.New(m.state().Message)
				}
				return nil
			}

			var tracker advisor.Tracker
			state := tracker.Run(cmd.Context(), app.Advisor, req)
			if state.Phase == advisor.PhaseError {
				return errors.New(state.Message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderAdvice(advisor.PlainText(state.Advice)))
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the advice once without the interactive view")

	return cmd
}
