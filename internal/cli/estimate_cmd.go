package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/draft"
	"github.com/alexanderramin/folio/internal/export"
	"github.com/spf13/cobra"
)

var errNeedsTerminal = errors.New("interactive mode needs a terminal")

func newEstimateCmd(app *App) *cobra.Command {
	var (
		in     inputFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Calculate the six-stage production timeline",
		Example: `  folio estimate --books 3 --pages 160 --complexity complex
  folio estimate --team content=3,design=2 --rate design=10
  folio estimate --profile atlas --format xlsx --output plan.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
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
			return writeEstimate(cmd, d, f, output)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", string(export.FormatTable), "Output format: table, json, csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func estimateOf(d *draft.Draft) export.Estimate {
	return export.Estimate{
		Project: d.Project(),
		Team:    d.Team(),
		Rates:   d.Rates(),
		Result:  d.Result(),
	}
}

func writeEstimate(cmd *cobra.Command, d *draft.Draft, f export.Format, output string) (err error) {
	if output == "" && f.Binary() {
		return fmt.Errorf("--format %s needs --output", f)
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}

	e := estimateOf(d)
	if f == export.FormatTable {
		_, err = fmt.Fprint(w, formatter.RenderTimeline(e.Project, e.Team, e.Result, d.RatesCustomized()))
	} else {
		err = export.Write(w, f, e)
	}
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
	}
	return nil
}
