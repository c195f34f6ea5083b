package models

// FeeQuote is the computed cancellation fee for a booking at a point in time.
type FeeQuote struct {
	FeePercent        float64 `json:"feePercent"`
	FeeAmount         float64 `json:"feeAmount"`
	HoursUntilStart   float64 `json:"hoursUntilStart"`
	IsClientInitiated bool    `json:"isClientInitiated"`
	Description       string  `json:"description"`
}
