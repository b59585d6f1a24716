package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowercases s and strips combining marks so "Teórica" and "TEORICA"
// compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ParseSessionType maps a stored session type label onto the canonical enum.
// Unknown labels map to SessionOther.
func ParseSessionType(s string) SessionType {
	f := fold(s)
	switch {
	case f == "":
		return SessionOther
	case strings.Contains(f, "magistral"):
		return SessionMagistral
	case strings.Contains(f, "teoric"):
		return SessionTeorica
	case strings.Contains(f, "laboratorio"):
		return SessionLaboratorio
	case strings.Contains(f, "taller"), strings.Contains(f, "pbl"):
		return SessionTallerPBL
	default:
		return SessionOther
	}
}

// Class returns the staffing class for t. ok is false for session types that
// are not counted in either class.
func (t SessionType) Class() (ClassType, bool) {
	switch t {
	case SessionMagistral, SessionTeorica:
		return ClassTeorico, true
	case SessionLaboratorio, SessionTallerPBL:
		return ClassPractico, true
	default:
		return "", false
	}
}

// ClassifySession is ParseSessionType followed by Class.
func ClassifySession(label string) (ClassType, bool) {
	return ParseSessionType(label).Class()
}

// LevelBandFor maps a numeric course level onto its band.
func LevelBandFor(level int) (LevelBand, bool) {
	switch level {
	case 1, 2:
		return LevelBasic, true
	case 3, 4:
		return LevelAdvanced, true
	default:
		return "", false
	}
}

// categoryRules is evaluated in order; the first substring match wins.
var categoryRules = []struct {
	needle   string
	category ProfessorCategory
}{
	{"profesional distinguido", CategoryAsociado},
	{"titular", CategoryTitular},
	{"asociado", CategoryAsociado},
	{"asistente", CategoryAsistente},
	{"instructor", CategoryInstructor},
	{"agd", CategoryAGD},
	{"agm", CategoryAGM},
}

// CanonicalCategory reduces a free-form professor category to the enum.
// Anything unrecognized, including blank, is Cátedra.
func CanonicalCategory(raw string) ProfessorCategory {
	f := fold(raw)
	for _, r := range categoryRules {
		if strings.Contains(f, r.needle) {
			return r.category
		}
	}
	return CategoryCatedra
}
