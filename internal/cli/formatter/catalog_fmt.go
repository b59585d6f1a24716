package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/carga/internal/domain"
)

// FormatDepartments renders the department list.
func FormatDepartments(depts []*domain.Department) string {
	if len(depts) == 0 {
		return Dim("No departments. Add one with: carga department add ISIS") + "\n"
	}
	rows := make([][]string, 0, len(depts))
	for _, d := range depts {
		rows = append(rows, []string{Bold(d.Code), d.Name, domain.DependencyForDepartment(d.Code)})
	}
	return RenderTable([]string{"CODE", "NAME", "DEPENDENCY"}, rows)
}

// FormatProfessors renders the professor list with the canonical category
// next to the stored one.
func FormatProfessors(profs []*domain.Professor) string {
	if len(profs) == 0 {
		return Dim("No professors registered.") + "\n"
	}
	rows := make([][]string, 0, len(profs))
	for _, p := range profs {
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			Bold(p.Name),
			OrDash(p.Category),
			CategoryLabel(domain.CanonicalCategory(p.Category)),
			OrDash(p.Dependency),
		})
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "CANONICAL", "DEPENDENCY"}, rows)
}

// FormatCourses renders the course catalog.
func FormatCourses(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses registered.") + "\n"
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		band := Dim("unmapped")
		if b, ok := domain.LevelBandFor(c.Level); ok {
			band = string(b)
		}
		rows = append(rows, []string{
			Bold(c.Code),
			OrDash(c.Name),
			c.DepartmentCode,
			strconv.Itoa(c.Credits),
			fmt.Sprintf("%d %s", c.Level, Dim("("+band+")")),
			strconv.Itoa(c.Weeks),
		})
	}
	return RenderTableRight([]string{"CODE", "NAME", "DEPT", "CREDITS", "LEVEL", "WEEKS"}, rows, 3, 5)
}

// FormatSections renders sections with their cross-list tag and dedications.
func FormatSections(sections []*domain.Section) string {
	if len(sections) == 0 {
		return Dim("No sections registered.") + "\n"
	}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		tag := OrDash(s.CrossListTag)
		if domain.IsGroupTag(s.CrossListTag) {
			tag = StylePurple.Render(s.CrossListTag)
		}
		rows = append(rows, []string{
			Bold(s.NRC),
			s.CourseCode,
			strconv.Itoa(s.Enrollment),
			strconv.Itoa(s.Capacity),
			tag,
			Dedications(s.Dedications),
		})
	}
	return RenderTableRight([]string{"NRC", "COURSE", "ENROLLED", "CAPACITY", "CROSS-LIST", "DEDICATIONS"}, rows, 2, 3)
}

// FormatSessions renders the sessions of a section.
func FormatSessions(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions registered.") + "\n"
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		class := Dim("● --")
		if c, ok := domain.ClassifySession(s.Type); ok {
			class = ClassBadge(c)
		}
		profs := make([]string, 0, len(s.ProfessorIDs))
		for _, id := range s.ProfessorIDs {
			profs = append(profs, ShortID(id))
		}
		rows = append(rows, []string{
			Dim(ShortID(s.ID)),
			s.SectionNRC,
			s.Type,
			class,
			OrDash(s.Days),
			Decimal(s.Duration),
			Decimal(s.PER),
			OrDash(strings.Join(profs, ", ")),
		})
	}
	return RenderTableRight([]string{"ID", "NRC", "TYPE", "CLASS", "DAYS", "HOURS", "PER", "PROFESSORS"}, rows, 5, 6)
}
