package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*levelFlag)(nil)
	_ pflag.Value = (*classFlag)(nil)
	_ pflag.Value = (*categoryFlag)(nil)
)

// levelFlag is a pflag.Value accepting a level band name.
type levelFlag struct{ band domain.LevelBand }

func (f *levelFlag) String() string { return string(f.band) }
func (f *levelFlag) Type() string { return "level" }

func (f *levelFlag) Set(s string) error {
	band, ok := domain.ParseLevelBand(s)
	if !ok {
		return fmt.Errorf("unknown level %q (want %q or %q)", s, domain.LevelBasic, domain.LevelAdvanced)
	}
	f.band = band
	return nil
}

// classFlag is a pflag.Value accepting Teorico or Practico.
type classFlag struct{ class domain.ClassType }

func (f *classFlag) String() string { return string(f.class) }
func (f *classFlag) Type() string { return "class" }

func (f *classFlag) Set(s string) error {
	for _, c := range domain.ClassTypes {
		if strings.EqualFold(s, string(c)) {
			f.class = c
			return nil
		}
	}
	return fmt.Errorf("unknown class %q (want %q or %q)", s, domain.ClassTeorico, domain.ClassPractico)
}

// categoryFlag is a pflag.Value accepting a professor category. Free-form
// labels are reduced the same way stored categories are.
type categoryFlag struct{ category domain.ProfessorCategory }

func (f *categoryFlag) String() string { return string(f.category) }
func (f *categoryFlag) Type() string { return "category" }

func (f *categoryFlag) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("empty professor type")
	}
	f.category = domain.CanonicalCategory(s)
	return nil
}
