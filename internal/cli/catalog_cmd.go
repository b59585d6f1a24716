package cli

import (
	"fmt"

	"github.com/alexanderramin/carga/internal/cli/formatter"
	"github.com/alexanderramin/carga/internal/domain"
	"github.com/spf13/cobra"
)

func newDepartmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "department",
		Aliases: []string{"dept"},
		Short:   "Manage departments",
	}
	cmd.AddCommand(newDepartmentAddCmd(app), newDepartmentListCmd(app))
	return cmd
}

func newDepartmentAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Register a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Department{Code: args[0], Name: name}
			if err := app.Departments.Create(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created department %s (%s)\n", d.Code, d.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name (defaults to its dependency)")
	return cmd
}

func newDepartmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			depts, err := app.Departments.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDepartments(depts))
			return nil
		},
	}
}

func newProfessorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "professor",
		Aliases: []string{"prof"},
		Short:   "Manage professors",
	}
	cmd.AddCommand(newProfessorAddCmd(app), newProfessorListCmd(app))
	return cmd
}

func newProfessorAddCmd(app *App) *cobra.Command {
	var id, name, category, dependency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a professor",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Professor{ID: id, Name: name, Category: category, Dependency: dependency}
			if err := app.Professors.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created professor %s [%s] as %s\n",
				p.Name, p.ID, domain.CanonicalCategory(p.Category))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Professor ID (generated when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&category, "category", "", "Category as recorded, e.g. \"Profesor Asociado\"")
	cmd.Flags().StringVar(&dependency, "dependency", "", "Administrative dependency as recorded")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProfessorListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List professors",
		RunE: func(cmd *cobra.Command, args []string) error {
			profs, err := app.Professors.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfessors(profs))
			return nil
		},
	}
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}
	cmd.AddCommand(newCourseAddCmd(app), newCourseListCmd(app))
	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name, department string
	var credits, level, weeks int

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Register a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Course{
				Code:           args[0],
				Name:           name,
				Credits:        credits,
				Level:          level,
				DepartmentCode: department,
				Weeks:          weeks,
			}
			if err := app.Courses.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created course %s (%d credits, level %d)\n", c.Code, c.Credits, c.Level)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&department, "department", "", "Owning department code")
	cmd.Flags().IntVar(&credits, "credits", 0, "Credits")
	cmd.Flags().IntVar(&level, "level", 0, "Course level (1-4)")
	cmd.Flags().IntVar(&weeks, "weeks", domain.FullTermWeeks, "Teaching weeks")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("credits")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(cmd.Context(), department)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(courses))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Only courses of this department")
	return cmd
}
