package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNutrientNitrogenBands(t *testing.T) {
	cases := []struct {
		value float64
		want  NutrientLevel
	}{
		{0, NutrientLevelLow},
		{150, NutrientLevelLow},
		{279.9, NutrientLevelLow},
		{280, NutrientLevelMedium},
		{400, NutrientLevelMedium},
		{560, NutrientLevelMedium},
		{560.1, NutrientLevelOptimal},
		{900, NutrientLevelOptimal},
	}
	for _, tc := range cases {
		st, err := ClassifyNutrient(NutrientNitrogen, tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, st.Level, "N=%g", tc.value)
	}
}

func TestClassifyNutrientPhosphorusBands(t *testing.T) {
	low, err := ClassifyNutrient(NutrientPhosphorus, 5)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelLow, low.Level)

	med, err := ClassifyNutrient(NutrientPhosphorus, 10)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelMedium, med.Level)

	opt, err := ClassifyNutrient(NutrientPhosphorus, 25.5)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelOptimal, opt.Level)
}

func TestClassifyNutrientPotassiumBands(t *testing.T) {
	low, err := ClassifyNutrient(NutrientPotassium, 90)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelLow, low.Level)

	med, err := ClassifyNutrient(NutrientPotassium, 280)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelMedium, med.Level)

	opt, err := ClassifyNutrient(NutrientPotassium, 300)
	require.NoError(t, err)
	assert.Equal(t, NutrientLevelOptimal, opt.Level)
}

func TestClassifyNutrientCarriesIdealRange(t *testing.T) {
	st, err := ClassifyNutrient(NutrientPotassium, 50)
	require.NoError(t, err)
	assert.Equal(t, 110.0, st.IdealMin)
	assert.Equal(t, 280.0, st.IdealMax)
	assert.Equal(t, 50.0, st.Value)
}

func TestClassifyNutrientRejectsNegative(t *testing.T) {
	_, err := ClassifyNutrient(NutrientNitrogen, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClassifyNutrientRejectsZeroKind(t *testing.T) {
	_, err := ClassifyNutrient(NutrientKind{}, 100)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNutrientLevelOrdering(t *testing.T) {
	assert.True(t, NutrientLevelOptimal.AtLeast(NutrientLevelLow))
	assert.True(t, NutrientLevelMedium.AtLeast(NutrientLevelMedium))
	assert.False(t, NutrientLevelLow.AtLeast(NutrientLevelMedium))
}

func TestNewNutrientKind(t *testing.T) {
	k, err := NewNutrientKind("P")
	require.NoError(t, err)
	assert.True(t, k.Equal(NutrientPhosphorus))

	_, err = NewNutrientKind("Mg")
	assert.ErrorIs(t, err, ErrValidation)
}
