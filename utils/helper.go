package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds a currency amount to minor units (2 decimal places).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MonthOf truncates a time to the first instant of its calendar month in UTC.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastMonths returns the starts of the trailing n calendar months ending with
// the month of ref, oldest first.
func LastMonths(ref time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	months := make([]time.Time, 0, n)
	cur := MonthOf(ref).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		months = append(months, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// MonthKey formats a month as "2006-01", the grouping key used by the
// monthly summaries.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel formats a month the way the dashboards chart it, e.g. "Jan 2026".
func MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func DereferencePtr[T any](ptr *T, defaults ...T) T {
	if ptr != nil {
		return *ptr
	}
	if len(defaults) > 0 {
		return defaults[0]
	}
	var zero T
	return zero
}

func UniqueSlice[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
