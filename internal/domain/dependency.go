package domain

import "strings"

// departmentDependencies maps a department code to the administrative
// dependency that staffs it.
var departmentDependencies = map[string]string{
	"ISIS": "Ingeniería de Sistemas y Computación",
	"IIND": "Ingeniería Industrial",
	"ICYA": "Ingeniería Civil y Ambiental",
	"IELE": "Ingeniería Eléctrica y Electrónica",
	"IMEC": "Ingeniería Mecánica",
	"IQUI": "Ingeniería Química y de Alimentos",
	"IBIO": "Ingeniería Biomédica",
	"INGE": "Decanatura de Ingeniería",
	"MATE": "Matemáticas",
	"FISI": "Física",
}

var dependencyDepartments = func() map[string]string {
	m := make(map[string]string, len(departmentDependencies))
	for dept, dep := range departmentDependencies {
		m[dep] = dept
	}
	return m
}()

// DependencyForDepartment returns the dependency for a department code.
// Unknown departments are their own dependency.
func DependencyForDepartment(department string) string {
	code := strings.ToUpper(strings.TrimSpace(department))
	if dep, ok := departmentDependencies[code]; ok {
		return dep
	}
	return department
}

// DepartmentForDependency is the reverse of DependencyForDepartment.
func DepartmentForDependency(dependency string) string {
	if dept, ok := dependencyDepartments[dependency]; ok {
		return dept
	}
	return dependency
}

// ResolveDependency picks the dependency a professor's hours are booked to.
// The table is authoritative: the professor's stored dependency (first
// argument), whether blank, naming a department ("DEPARTAMENTO DE ...") or
// anything else, never overrides the course department's entry.
func ResolveDependency(_ string, courseDepartment string) string {
	return DependencyForDepartment(courseDepartment)
}
