package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingIntervalFor(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	t.Run("working day with break", func(t *testing.T) {
		monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
		work, breaks, err := h.engine.workingIntervalFor(ctx, "prov-1", monday)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC), work.Start)
		assert.Equal(t, time.Date(2026, time.September, 7, 18, 0, 0, 0, time.UTC), work.End)

		require.Len(t, breaks, 1)
		assert.Equal(t, time.Date(2026, time.September, 7, 13, 0, 0, 0, time.UTC), breaks[0].Start)
		assert.Equal(t, time.Date(2026, time.September, 7, 14, 0, 0, 0, time.UTC), breaks[0].End)
	})

	t.Run("closed day", func(t *testing.T) {
		sunday := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)
		_, _, err := h.engine.workingIntervalFor(ctx, "prov-1", sunday)
		assert.ErrorIs(t, err, ErrNotWorkingDay)
	})

	t.Run("unknown provider reads as closed", func(t *testing.T) {
		monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
		_, _, err := h.engine.workingIntervalFor(ctx, "nobody", monday)
		assert.ErrorIs(t, err, ErrNotWorkingDay)
	})
}

func TestHasConflict(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	h.bookings.add(bookingFixture("bk-1", "prov-1", "cust-1", 600, 660))

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		conflict, err := h.engine.HasConflict(ctx, "prov-1", mondayWindow(t, 10, 30, 60), "", testNow)
		require.NoError(t, err)
		assert.True(t, conflict)
	})

	t.Run("adjacent window does not conflict", func(t *testing.T) {
		conflict, err := h.engine.HasConflict(ctx, "prov-1", mondayWindow(t, 11, 0, 60), "", testNow)
		require.NoError(t, err)
		assert.False(t, conflict)
	})

	t.Run("excluded booking is ignored", func(t *testing.T) {
		conflict, err := h.engine.HasConflict(ctx, "prov-1", mondayWindow(t, 10, 0, 60), "bk-1", testNow)
		require.NoError(t, err)
		assert.False(t, conflict, "a reschedule check skips the booking being moved")
	})

	t.Run("live hold conflicts", func(t *testing.T) {
		_, err := h.engine.ReserveSlot(ctx, "prov-1", mondayWindow(t, 15, 0, 60), "cust-2")
		require.NoError(t, err)

		conflict, err := h.engine.HasConflict(ctx, "prov-1", mondayWindow(t, 15, 30, 60), "", testNow)
		require.NoError(t, err)
		assert.True(t, conflict)
	})
}

func TestCustomerHasConflict(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	// The customer's own booking lives with a different provider.
	h.bookings.add(bookingFixture("bk-1", "prov-other", "cust-1", 600, 660))

	conflict, err := h.engine.CustomerHasConflict(ctx, "cust-1", mondayWindow(t, 10, 0, 60), "")
	require.NoError(t, err)
	assert.True(t, conflict, "customer conflicts span providers")

	conflict, err = h.engine.CustomerHasConflict(ctx, "cust-2", mondayWindow(t, 10, 0, 60), "")
	require.NoError(t, err)
	assert.False(t, conflict)

	conflict, err = h.engine.CustomerHasConflict(ctx, "cust-1", mondayWindow(t, 10, 0, 60), "bk-1")
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestIsProviderAvailable(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	cases := []struct {
		name   string
		window TimeWindow
		want   bool
	}{
		{"inside working hours", mondayWindow(t, 10, 0, 60), true},
		{"before opening", mondayWindow(t, 8, 0, 60), false},
		{"runs past closing", mondayWindow(t, 17, 30, 60), false},
		{"overlaps the break", mondayWindow(t, 12, 30, 60), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			available, err := h.engine.isProviderAvailable(ctx, "prov-1", tc.window, testNow)
			require.NoError(t, err)
			assert.Equal(t, tc.want, available)
		})
	}

	t.Run("closed day", func(t *testing.T) {
		sunday := time.Date(2026, time.September, 13, 10, 0, 0, 0, time.UTC)
		w, err := WindowFor(sunday, 60)
		require.NoError(t, err)

		available, err := h.engine.isProviderAvailable(ctx, "prov-1", w, testNow)
		require.NoError(t, err)
		assert.False(t, available)
	})
}
