package scheduling

import (
	"context"
	"fmt"
	"math"
	"time"

	"bookwell/models"
)

// CancellationFee quotes the time-tiered fee for cancelling the booking now.
func (se *DefaultSchedulingEngine) CancellationFee(ctx context.Context, bookingID string, isClientInitiated bool) (models.FeeQuote, error) {
	booking, err := se.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return models.FeeQuote{}, err
	}

	start, err := booking.StartTime(time.Local)
	if err != nil {
		return models.FeeQuote{}, fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}

	return ComputeCancellationFee(booking.TotalPrice, start, se.now(), isClientInitiated), nil
}

// ComputeCancellationFee applies the tier table to a booking price.
// Provider-initiated cancellations carry stiffer percentages; past the
// 24-hour mark both sides cancel free.
func ComputeCancellationFee(totalPrice float64, start, now time.Time, isClientInitiated bool) models.FeeQuote {
	hoursUntilStart := HoursUntil(start, now)

	if totalPrice <= 0 {
		return models.FeeQuote{
			HoursUntilStart:   hoursUntilStart,
			IsClientInitiated: isClientInitiated,
			Description:       "No fee - the booking is free of charge",
		}
	}

	percent := feePercent(hoursUntilStart, isClientInitiated)
	return models.FeeQuote{
		FeePercent:        percent,
		FeeAmount:         round2(totalPrice * percent / 100),
		HoursUntilStart:   hoursUntilStart,
		IsClientInitiated: isClientInitiated,
		Description:       feeDescription(percent, hoursUntilStart, isClientInitiated),
	}
}

func feePercent(hoursUntilStart float64, isClientInitiated bool) float64 {
	// No fee when cancelling a day or more in advance.
	if hoursUntilStart >= 24 {
		return 0
	}

	if isClientInitiated {
		switch {
		case hoursUntilStart < 0:
			return 100
		case hoursUntilStart < 2:
			return 50
		case hoursUntilStart < 6:
			return 30
		case hoursUntilStart < 12:
			return 20
		default:
			return 10
		}
	}

	// Provider cancellations are penalized harder.
	switch {
	case hoursUntilStart < 0:
		return 100
	case hoursUntilStart < 6:
		return 50
	case hoursUntilStart < 12:
		return 30
	default:
		return 20
	}
}

func feeDescription(percent, hoursUntilStart float64, isClientInitiated bool) string {
	if percent == 0 {
		return "No fee when cancelling more than 24 hours in advance"
	}
	if hoursUntilStart < 0 {
		return "Full fee - the booking has already started"
	}

	who := "provider"
	if isClientInitiated {
		who = "client"
	}
	return fmt.Sprintf("%.0f%% fee for cancellation by the %s %.0f hours before start", percent, who, math.Round(hoursUntilStart))
}

// Refund returns what the customer gets back after the fee; never negative.
func Refund(paidAmount, feeAmount float64) float64 {
	return math.Max(0, paidAmount-feeAmount)
}
