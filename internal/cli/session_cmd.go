package cli

import (
	"fmt"

	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage scheduled sessions",
	}
	cmd.AddCommand(newSessionAddCmd(app), newSessionListCmd(app), newSessionRemoveCmd(app))
	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var section, sessionType, days string
	var duration float64
	var professors []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a session on a section",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Session{
				SectionNRC:   section,
				Type:         sessionType,
				Duration:     duration,
				Days:         days,
				ProfessorIDs: professors,
			}
			if err := app.Sessions.Create(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created session %s on section %s\n", s.ID, s.SectionNRC)
			if _, ok := domain.ClassifySession(s.Type); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render(
					fmt.Sprintf("Warning: %q is not a recognized session type; it will not count toward PER or workload.", s.Type)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Section NRC")
	cmd.Flags().StringVar(&sessionType, "type", "", "Session type, e.g. Magistral, Teórica, Laboratorio, Taller y PBL")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Hours per meeting")
	cmd.Flags().StringVar(&days, "days", "", "Meeting days, e.g. L,I")
	cmd.Flags().StringSliceVar(&professors, "professor", nil, "Assigned professor ID (repeatable)")
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sessions of a section",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListBySection(cmd.Context(), section)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Section NRC")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", args[0])
			return nil
		},
	}
}
