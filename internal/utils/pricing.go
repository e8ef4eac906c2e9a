package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// Rates are the per-unit prices used to quote a rental.
type Rates struct {
	Hourly decimal.Decimal
	Daily  decimal.Decimal
}

// ParseRates builds Rates from their decimal string form.
func ParseRates(hourly, daily string) (Rates, error) {
	h, err := decimal.NewFromString(hourly)
	if err != nil {
		return Rates{}, fmt.Errorf("invalid hourly rate: %w", err)
	}
	d, err := decimal.NewFromString(daily)
	if err != nil {
		return Rates{}, fmt.Errorf("invalid daily rate: %w", err)
	}
	return Rates{Hourly: h, Daily: d}, nil
}

// RentalCostBreakdown provides detailed cost breakdown
type RentalCostBreakdown struct {
	Days      int
	Hours     int
	DaysCost  decimal.Decimal
	HoursCost decimal.Decimal
	TotalCost decimal.Decimal
}

// DurationHours returns the whole hours between start and end, rounded down.
func DurationHours(start, end time.Time) (int, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end must be after start")
	}
	return int(end.Sub(start) / time.Hour), nil
}

// CalculateRentalCost quotes a rental of the given length. Full days are billed
// at the daily rate and the remainder at the hourly rate, unless rounding the
// remainder up to one more day is cheaper. A zero daily rate bills everything
// hourly.
func CalculateRentalCost(hours int, rates Rates) RentalCostBreakdown {
	if hours <= 0 {
		return RentalCostBreakdown{DaysCost: decimal.Zero, HoursCost: decimal.Zero, TotalCost: decimal.Zero}
	}

	if rates.Daily.IsZero() {
		cost := rates.Hourly.Mul(decimal.NewFromInt(int64(hours)))
		return RentalCostBreakdown{Hours: hours, DaysCost: decimal.Zero, HoursCost: cost, TotalCost: cost}
	}

	days := hours / hoursPerDay
	rem := hours % hoursPerDay
	daysCost := rates.Daily.Mul(decimal.NewFromInt(int64(days)))
	hoursCost := rates.Hourly.Mul(decimal.NewFromInt(int64(rem)))

	if rem > 0 && !rates.Hourly.IsZero() && rates.Daily.LessThan(hoursCost) {
		days++
		rem = 0
		daysCost = daysCost.Add(rates.Daily)
		hoursCost = decimal.Zero
	}

	return RentalCostBreakdown{
		Days:      days,
		Hours:     rem,
		DaysCost:  daysCost.Round(2),
		HoursCost: hoursCost.Round(2),
		TotalCost: daysCost.Add(hoursCost).Round(2),
	}
}
