package cli

import (
	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	QA     service.QAService
	Import service.ImportService
	Config config.Config

	// IsTerminal reports whether output goes to a terminal. It decides the
	// "auto" format; nil means never.
	IsTerminal func() bool

	// PickFinding chooses a finding when "report resolve" gets no ID on a
	// terminal. nil means the interactive select form.
	PickFinding func(report *domain.QAReport) (string, error)
}

// NewRootCmd creates the top-level "addie" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "addie",
		Short:         "Quality checks for ADDIE course designs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newValidateCmd(app),
		newCheckCmd(app),
		newReportCmd(app),
		newDashboardCmd(app),
	)

	return root
}
