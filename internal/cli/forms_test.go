package cli

import (
	"testing"

	"github.com/alexanderramin/carga/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePercent(t *testing.T) {
	assert.NoError(t, validatePercent("0"))
	assert.NoError(t, validatePercent("100"))
	assert.NoError(t, validatePercent("50%"))
	assert.NoError(t, validatePercent(" 12.5 "))
	assert.Error(t, validatePercent(""))
	assert.Error(t, validatePercent("101"))
	assert.Error(t, validatePercent("-1"))
	assert.Error(t, validatePercent("half"))
}

func TestDedicationForm_DefaultsToFullDedication(t *testing.T) {
	var professorID, pct string
	form := dedicationForm([]*domain.Professor{{ID: "p1", Name: "Ana", Category: "Titular"}}, &professorID, &pct)

	require.NotNil(t, form)
	assert.Equal(t, "100", pct)
}

func TestParseDedications(t *testing.T) {
	got, err := parseDedications([]string{"p1=60", " p2 = 40% "})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"p1": 60, "p2": 40}, got)

	got, err = parseDedications(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseDedications([]string{"=50"})
	assert.Error(t, err)
}
