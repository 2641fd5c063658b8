package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/utils"
)

// GroupServicesByProperty partitions entries by property id, preserving
// input order within each group.
func GroupServicesByProperty(entries []models.ServiceEntry) map[string][]models.ServiceEntry {
	grouped := make(map[string][]models.ServiceEntry)
	for _, entry := range entries {
		grouped[entry.PropertyID] = append(grouped[entry.PropertyID], entry)
	}
	return grouped
}

// GroupServicesByMonth aggregates entries into the trailing `months`
// calendar months ending with the month of ref, oldest first. Months with
// no entries are zero-filled so the forecast window always has a point per
// month. Revenue is base revenue (tax-exclusive).
func GroupServicesByMonth(entries []models.ServiceEntry, months int, ref time.Time) []models.MonthlyAggregate {
	window := utils.LastMonths(ref, months)
	if len(window) == 0 {
		return nil
	}

	index := make(map[string]int, len(window))
	aggregates := make([]models.MonthlyAggregate, len(window))
	for i, month := range window {
		index[utils.MonthKey(month)] = i
		aggregates[i] = models.MonthlyAggregate{
			Year:    month.Year(),
			Month:   int(month.Month()),
			Label:   utils.MonthLabel(month),
			Revenue: decimal.Zero,
		}
	}

	for _, entry := range entries {
		i, ok := index[utils.MonthKey(entry.Date)]
		if !ok {
			continue
		}
		aggregates[i].Revenue = aggregates[i].Revenue.Add(entry.BasePrice)
		aggregates[i].Services++
	}

	return aggregates
}
