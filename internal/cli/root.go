package cli

import (
	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Departments service.DepartmentService
	Professors  service.ProfessorService
	Courses     service.CourseService
	Sections    service.SectionService
	Sessions    service.SessionService
	Workload    service.WorkloadService

	// Use-case overrides. Nil falls back to the services above.
	RecomputePER  app.RecomputePERUseCase
	Statistics    app.StatisticsUseCase
	StandardSizes app.StandardSizesUseCase
	Dedicate      app.DedicateUseCase

	// IsInteractive reports whether prompts and the browser may be shown.
	IsInteractive func() bool
	// RunForm runs a huh form. Nil runs it on the terminal.
	RunForm func(*huh.Form) error
}

// NewRootCmd creates the top-level "carga" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "carga",
		Short:         "Teaching workload normalization and staffing ratios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDepartmentCmd(app),
		newProfessorCmd(app),
		newCourseCmd(app),
		newSectionCmd(app),
		newSessionCmd(app),
		newPERCmd(app),
		newStatsCmd(app),
	)

	return root
}
