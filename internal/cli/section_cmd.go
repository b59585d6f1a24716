package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections and professor dedications",
	}
	cmd.AddCommand(newSectionAddCmd(app), newSectionListCmd(app), newSectionDedicateCmd(app))
	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var course, crossList string
	var enrollment, capacity int
	var dedications []string

	cmd := &cobra.Command{
		Use:   "add NRC",
		Short: "Register a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ded, err := parseDedications(dedications)
			if err != nil {
				return err
			}
			s := &domain.Section{
				NRC:          args[0],
				CourseCode:   course,
				Enrollment:   enrollment,
				Capacity:     capacity,
				CrossListTag: crossList,
				Dedications:  ded,
			}
			if err := app.Sections.Create(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created section %s of %s (%d enrolled)\n", s.NRC, s.CourseCode, s.Enrollment)
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course code")
	cmd.Flags().IntVar(&enrollment, "enrollment", 0, "Enrolled students")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Seat capacity")
	cmd.Flags().StringVar(&crossList, "cross-list", "", "Cross-list tag shared by grouped sections")
	cmd.Flags().StringArrayVar(&dedications, "dedication", nil, "Professor dedication as ID=PERCENT (repeatable)")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Sections.List(cmd.Context(), strings.ToUpper(course))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSections(sections))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Only sections of this course")
	return cmd
}

func newSectionDedicateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dedicate NRC [PROFESSOR PERCENT]",
		Short: "Set the share of a section taught by a professor",
		Long: "Set the share of a section taught by a professor. A percentage of 0\n" +
			"removes the professor. With only NRC on a terminal, a form asks for the rest.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected NRC, or NRC PROFESSOR PERCENT")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			nrc := args[0]
			var professorID, pctText string
			if len(args) == 3 {
				professorID, pctText = args[1], args[2]
			} else {
				if !app.isInteractive() {
					return fmt.Errorf("PROFESSOR and PERCENT are required when not on a terminal")
				}
				profs, err := app.Professors.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(profs) == 0 {
					return fmt.Errorf("no professors registered")
				}
				if err := app.runForm(dedicationForm(profs, &professorID, &pctText)); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
						return nil
					}
					return err
				}
			}

			pct, err := parsePercent(pctText)
			if err != nil {
				return err
			}
			sec, err := app.dedicateUseCase().SetDedication(cmd.Context(), nrc, professorID, pct)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Section %s: %s\n", sec.NRC, formatter.Dedications(sec.Dedications))
			return nil
		},
	}
	return cmd
}

// parseDedications reads ID=PERCENT pairs.
func parseDedications(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		id, pctText, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("invalid dedication %q: want ID=PERCENT", pair)
		}
		pct, err := parsePercent(pctText)
		if err != nil {
			return nil, err
		}
		out[strings.TrimSpace(id)] = pct
	}
	return out, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", s)
	}
	return v, nil
}
