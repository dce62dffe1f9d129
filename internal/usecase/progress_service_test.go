package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashikfit/backend/internal/domain"
)

func TestProgressService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive weight", func(t *testing.T) {
		env := newTestEnv(t, nil)
		_, err := env.progress.Add(ctx, "u1", WeightEntryInput{Weight: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("defaults the date and skips body fat without a calculator session", func(t *testing.T) {
		env := newTestEnv(t, nil)
		entry, err := env.progress.Add(ctx, "u1", WeightEntryInput{
			Weight:       80,
			Measurements: domain.Measurements{Neck: ptr(40), Waist: ptr(90)},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "u1", entry.OwnerID)
		assert.True(t, entry.Date.Equal(env.clock.now()))
		assert.Nil(t, entry.BodyFatPercentage)
	})

	t.Run("estimates body fat from the saved height and gender", func(t *testing.T) {
		env := newTestEnv(t, nil)
		_, err := env.calc.Run(ctx, "u1", maleModerate())
		require.NoError(t, err)

		entry, err := env.progress.Add(ctx, "u1", WeightEntryInput{
			Weight:       80,
			Measurements: domain.Measurements{Neck: ptr(40), Waist: ptr(90)},
		})
		require.NoError(t, err)
		require.NotNil(t, entry.BodyFatPercentage)
		assert.InDelta(t, 24.9, *entry.BodyFatPercentage, 1e-9)
		require.NotNil(t, entry.BodyFatMass)
		assert.InDelta(t, 19.9, *entry.BodyFatMass, 1e-9)
		require.NotNil(t, entry.LeanMass)
		assert.InDelta(t, 60.1, *entry.LeanMass, 1e-9)
	})
}

func TestProgressService_ListAndDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	day := func(d int) time.Time { return time.Date(2026, 4, d, 8, 0, 0, 0, time.UTC) }

	mid, err := env.progress.Add(ctx, "u1", WeightEntryInput{Date: day(10), Weight: 81})
	require.NoError(t, err)
	_, err = env.progress.Add(ctx, "u1", WeightEntryInput{Date: day(20), Weight: 80})
	require.NoError(t, err)
	_, err = env.progress.Add(ctx, "u1", WeightEntryInput{Date: day(1), Weight: 82})
	require.NoError(t, err)

	entries, err := env.progress.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []float64{80, 81, 82}, []float64{entries[0].Weight, entries[1].Weight, entries[2].Weight})

	require.NoError(t, env.progress.Delete(ctx, "u1", mid.ID))
	assert.ErrorIs(t, env.progress.Delete(ctx, "u1", mid.ID), domain.ErrEntryNotFound)

	entries, err = env.progress.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	other, err := env.progress.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
