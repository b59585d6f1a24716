package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/carga/internal/app"
	"github.com/alexanderramin/carga/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Staffing statistics per dependency",
	}
	cmd.AddCommand(
		newStatsShowCmd(app),
		newStatsSizesCmd(app),
		newStatsExportCmd(app),
		newStatsBrowseCmd(app),
	)
	return cmd
}

// statsFilters binds the bucket filter flags shared by the stats commands.
type statsFilters struct {
	dependency string
	level      levelFlag
	class      classFlag
	category   categoryFlag
}

func (f *statsFilters) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dependency, "dependency", "", "Dependency name or department code")
	cmd.Flags().Var(&f.level, "level", "Level band: \"Basico e intermedio\" or \"Avanzado\"")
	cmd.Flags().Var(&f.class, "class", "Class: Teorico or Practico")
	cmd.Flags().Var(&f.category, "type", "Professor type, e.g. Titular or Cátedra")
}

func (f *statsFilters) request() app.StatsRequest {
	return app.StatsRequest{
		Dependency:    f.dependency,
		Level:         f.level.band,
		ProfessorType: f.category.category,
		Class:         f.class.class,
	}
}

func newStatsShowCmd(a *App) *cobra.Command {
	var filters statsFilters

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print hours, PER and required professors per bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.statisticsUseCase().Statistics(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(resp))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}

func newStatsSizesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "Print the standard section size of every department and class",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.standardSizesUseCase().StandardSizes(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStandardSizes(report))
			return nil
		},
	}
}

func newStatsExportCmd(a *App) *cobra.Command {
	var filters statsFilters
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write bucket metrics as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.statisticsUseCase().Statistics(cmd.Context(), filters.request())
			if err != nil {
				return err
			}

			if out == "-" {
				return formatter.WriteStatsCSV(cmd.OutOrStdout(), resp.Buckets)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := formatter.WriteStatsCSV(f, resp.Buckets); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d buckets to %s\n", len(resp.Buckets), out)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, or - for stdout")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newStatsBrowseCmd(a *App) *cobra.Command {
	var filters statsFilters

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse buckets and their section-professor contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isInteractive() {
				return fmt.Errorf("stats browse needs an interactive terminal; use stats show instead")
			}
			resp, err := a.statisticsUseCase().Statistics(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			p := tea.NewProgram(newStatsBrowser(resp),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	filters.register(cmd)
	return cmd
}
