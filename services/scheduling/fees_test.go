package scheduling

import (
	"context"
	"testing"
	"time"

	bookingRepo "bookwell/database/repository/booking"
	"bookwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeePercentTiers(t *testing.T) {
	cases := []struct {
		name            string
		hoursUntilStart float64
		clientInitiated bool
		want            float64
	}{
		{"client already started", -0.5, true, 100},
		{"client under 2h", 1.5, true, 50},
		{"client exactly 2h", 2, true, 30},
		{"client under 6h", 5.99, true, 30},
		{"client exactly 6h", 6, true, 20},
		{"client under 12h", 11.5, true, 20},
		{"client exactly 12h", 12, true, 10},
		{"client under 24h", 23.99, true, 10},
		{"client exactly 24h", 24, true, 0},
		{"client well ahead", 72, true, 0},

		{"provider already started", -1, false, 100},
		{"provider under 6h", 5, false, 50},
		{"provider under 12h", 11, false, 30},
		{"provider under 24h", 13, false, 20},
		{"provider exactly 24h", 24, false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, feePercent(tc.hoursUntilStart, tc.clientInitiated))
		})
	}
}

func TestComputeCancellationFee(t *testing.T) {
	now := time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)

	t.Run("client five hours out pays thirty percent", func(t *testing.T) {
		quote := ComputeCancellationFee(1000, now.Add(5*time.Hour), now, true)
		assert.Equal(t, 30.0, quote.FeePercent)
		assert.Equal(t, 300.0, quote.FeeAmount)
		assert.InDelta(t, 5.0, quote.HoursUntilStart, 1e-9)
		assert.True(t, quote.IsClientInitiated)
		assert.NotEmpty(t, quote.Description)
	})

	t.Run("fee amount rounds to cents", func(t *testing.T) {
		quote := ComputeCancellationFee(99.99, now.Add(time.Hour), now, true)
		assert.Equal(t, 50.0, quote.FeePercent)
		assert.InDelta(t, 50.0, quote.FeeAmount, 1e-9)
	})

	t.Run("free booking quotes zero", func(t *testing.T) {
		quote := ComputeCancellationFee(0, now.Add(time.Hour), now, true)
		assert.Zero(t, quote.FeePercent)
		assert.Zero(t, quote.FeeAmount)
		assert.Equal(t, "No fee - the booking is free of charge", quote.Description)
	})

	t.Run("fee never decreases as start approaches", func(t *testing.T) {
		previous := -1.0
		for _, hours := range []float64{30, 24, 20, 12, 8, 6, 4, 2, 1, 0.5, -1} {
			quote := ComputeCancellationFee(500, now.Add(time.Duration(hours*float64(time.Hour))), now, true)
			assert.GreaterOrEqual(t, quote.FeeAmount, previous,
				"fee at %vh before start must not be below the fee further out", hours)
			previous = quote.FeeAmount
		}
	})
}

func TestRefundNeverNegative(t *testing.T) {
	assert.Equal(t, 700.0, Refund(1000, 300))
	assert.Equal(t, 0.0, Refund(200, 300))
	assert.Equal(t, 0.0, Refund(0, 0))
}

func TestEngineCancellationFee(t *testing.T) {
	h := newTestHarness()

	start := time.Date(2026, time.September, 7, 13, 0, 0, 0, time.Local)
	h.engine.Clock = func() time.Time { return start.Add(-5 * time.Hour) }
	h.bookings.add(models.Booking{
		ID:         "bk-1",
		ProviderID: "prov-1",
		CustomerID: "cust-1",
		Date:       "2026-09-07",
		Start:      780,
		End:        840,
		TotalPrice: 1000,
	})

	quote, err := h.engine.CancellationFee(context.Background(), "bk-1", true)
	require.NoError(t, err)
	assert.Equal(t, 30.0, quote.FeePercent)
	assert.Equal(t, 300.0, quote.FeeAmount)

	_, err = h.engine.CancellationFee(context.Background(), "missing", true)
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}
