package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyTable_RoundTrip(t *testing.T) {
	dep := DependencyForDepartment("ISIS")
	assert.Equal(t, "Ingeniería de Sistemas y Computación", dep)
	assert.Equal(t, "ISIS", DepartmentForDependency(dep))
}

func TestDependencyForDepartment_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "ARTE", DependencyForDepartment("ARTE"))
	assert.Equal(t, "ARTE", DepartmentForDependency("ARTE"))
}

func TestResolveDependency_TableIsAuthoritative(t *testing.T) {
	want := DependencyForDepartment("IIND")
	assert.Equal(t, want, ResolveDependency("", "IIND"))
	assert.Equal(t, want, ResolveDependency("DEPARTAMENTO DE INGENIERIA INDUSTRIAL", "IIND"))
	assert.Equal(t, want, ResolveDependency("Rectoría", "IIND"), "stored value does not override the table")
}

func TestSection_Dedications(t *testing.T) {
	s := &Section{NRC: "100"}
	assert.Equal(t, 0.0, s.Dedication("p1"))

	s.SetDedication("p1", 60)
	s.SetDedication("p2", 60)
	assert.Equal(t, 60.0, s.Dedication("p1"))
	assert.Len(t, s.Dedications, 2, "percentages are independent and may exceed 100 in total")

	s.SetDedication("p1", 0)
	_, present := s.Dedications["p1"]
	assert.False(t, present)
}

func TestIsGroupTag(t *testing.T) {
	assert.False(t, IsGroupTag(""))
	assert.False(t, IsGroupTag(NoGroupTag))
	assert.True(t, IsGroupTag("X"))
}
