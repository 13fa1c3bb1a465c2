package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/spf13/cobra"
)

var (
	errProfilesUnavailable = errors.New("rate profiles are unavailable: no database configured")
	errAdviceUnavailable   = errors.New("advice is unavailable: no provider configured")
)

// App holds the collaborators used by CLI commands. Any of them may be nil;
// commands that need a missing one fail with a clear error.
type App struct {
	Profiles service.ProfileService
	Advisor  advisor.AdviceService

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Serve runs the HTTP server until ctx is cancelled. An empty addr
	// keeps the configured address.
	Serve func(ctx context.Context, addr string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "folio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Editorial production timeline estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEstimateCmd(app),
		newAdviseCmd(app),
		newPresetsCmd(),
		newProfileCmd(app),
		newServeCmd(app),
	)

	return root
}
