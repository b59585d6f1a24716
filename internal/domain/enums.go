package domain

// SessionType is the canonical kind of a scheduled session.
type SessionType string

const (
	SessionMagistral   SessionType = "Magistral"
	SessionTeorica     SessionType = "Teorica"
	SessionLaboratorio SessionType = "Laboratorio"
	SessionTallerPBL   SessionType = "Taller y PBL"
	SessionOther       SessionType = "Otro"
)

// ClassType is the reduced session classification used by the staffing tables.
type ClassType string

const (
	ClassTeorico  ClassType = "Teorico"
	ClassPractico ClassType = "Practico"
)

// ClassTypes lists the recognized classes in report order.
var ClassTypes = []ClassType{ClassTeorico, ClassPractico}

// LevelBand groups numeric course levels.
type LevelBand string

const (
	LevelBasic    LevelBand = "Basico e intermedio"
	LevelAdvanced LevelBand = "Avanzado"
)

// LevelBands lists the bands in report order.
var LevelBands = []LevelBand{LevelBasic, LevelAdvanced}

// ProfessorCategory is the reduced professor classification.
type ProfessorCategory string

const (
	CategoryTitular    ProfessorCategory = "Titular"
	CategoryAsociado   ProfessorCategory = "Asociado"
	CategoryAsistente  ProfessorCategory = "Asistente"
	CategoryInstructor ProfessorCategory = "Instructor"
	CategoryAGD        ProfessorCategory = "AGD"
	CategoryAGM        ProfessorCategory = "AGM"
	CategoryCatedra    ProfessorCategory = "Cátedra"
)

// ProfessorCategories lists the categories in report order.
var ProfessorCategories = []ProfessorCategory{
	CategoryTitular, CategoryAsociado, CategoryAsistente, CategoryInstructor,
	CategoryAGD, CategoryAGM, CategoryCatedra,
}

// IsCatchAll reports whether c is the adjunct catch-all category.
func (c ProfessorCategory) IsCatchAll() bool {
	return c == CategoryCatedra
}

// ExcludedFromWorkload reports whether professors of this category are left
// out of workload accounting.
func (c ProfessorCategory) ExcludedFromWorkload() bool {
	return c == CategoryAGD || c == CategoryAGM
}

// ParseLevelBand parses a band name as printed by LevelBand.String, case-insensitively.
func ParseLevelBand(s string) (LevelBand, bool) {
	switch fold(s) {
	case fold(string(LevelBasic)), "basico":
		return LevelBasic, true
	case fold(string(LevelAdvanced)):
		return LevelAdvanced, true
	}
	return "", false
}

func (l LevelBand) String() string { return string(l) }

