package reports

import (
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/models"
)

var (
	incentiveThresholdRatio = decimal.NewFromFloat(0.9)
	incentiveRate           = decimal.NewFromFloat(0.05)
)

// CalculateIncentive computes a therapist's monthly incentive position.
// Sales above 90% of the monthly target earn 5% of the excess. Targets of
// zero report zero progress instead of dividing by zero.
func CalculateIncentive(target decimal.Decimal, actualSales decimal.Decimal) *models.IncentiveResult {
	threshold := target.Mul(incentiveThresholdRatio)

	result := &models.IncentiveResult{
		Target:             target,
		Threshold:          threshold,
		ActualSales:        actualSales,
		ProgressPercentage: decimal.Zero,
		ExcessAmount:       decimal.Zero,
		IncentiveEarned:    decimal.Zero,
	}

	if target.IsPositive() {
		result.ProgressPercentage = actualSales.Div(target).Mul(hundred).Round(2)
	}
	if actualSales.GreaterThan(threshold) {
		result.ExcessAmount = actualSales.Sub(threshold).Round(2)
		result.IncentiveEarned = result.ExcessAmount.Mul(incentiveRate).Round(2)
	}

	return result
}

// MonthlySalesTotal sums base prices for one therapist's entries in the
// given month. Incentives track base sales, not gross.
func MonthlySalesTotal(entries []models.ServiceEntry, therapistID string, year int, month int) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		if entry.TherapistID != therapistID {
			continue
		}
		if entry.Date.Year() != year || int(entry.Date.Month()) != month {
			continue
		}
		total = total.Add(entry.BasePrice)
	}
	return total
}
