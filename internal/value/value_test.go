package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinalConstructionRejectsNegative(t *testing.T) {
	_, err := NewMile(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = NewHour(-0.001)
	require.Error(t, err)

	_, err = NewDollar(-5)
	require.Error(t, err)

	_, err = NewPackageNum(-1)
	require.Error(t, err)
}

func TestOrdinalConstructionAcceptsZero(t *testing.T) {
	m, err := NewMile(0)
	require.NoError(t, err)
	assert.Equal(t, Mile(0), m)
}

func TestMileOrdering(t *testing.T) {
	a := MustMile(1)
	b := MustMile(2)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, Mile(3), a.Add(b))
}

func TestDifficultyRange(t *testing.T) {
	_, err := NewDifficulty(0.99)
	assert.Error(t, err)

	_, err = NewDifficulty(5.01)
	assert.Error(t, err)

	d, err := NewDifficulty(1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.Float64())

	d, err = NewDifficulty(5.0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d.Float64())
}

func TestHourOfDayRange(t *testing.T) {
	_, err := NewHourOfDay(24)
	assert.Error(t, err)

	_, err = NewHourOfDay(-0.1)
	assert.Error(t, err)

	h, err := NewHourOfDay(23.999)
	require.NoError(t, err)
	assert.InDelta(t, 23.999, h.Float64(), 1e-9)
}

func TestNominalTypesCompareOnlyByEquality(t *testing.T) {
	a := MustMilePerHour(40)
	b := MustMilePerHour(40)
	c := MustMilePerHour(10)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	x := MustDollarPerMile(1.5)
	y := MustDollarPerMile(1.5)
	assert.True(t, x.Equal(y))
}

func TestMustPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustMile(-1) })
	assert.Panics(t, func() { MustDifficulty(10) })
}
