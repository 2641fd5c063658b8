package reports

import (
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/utils"
)

// GetDashboardReport summarizes a service-entry slice for the admin landing
// page: totals, collection split, distinct customers and the most booked
// therapy. The caller pre-filters by property or date range as needed.
func GetDashboardReport(entries []models.ServiceEntry) *models.DashboardReport {
	report := &models.DashboardReport{
		TotalBaseSales:     decimal.Zero,
		TotalGST:           decimal.Zero,
		TotalSales:         decimal.Zero,
		HotelReceived:      decimal.Zero,
		NirvaanaReceived:   decimal.Zero,
		MostPopularTherapy: "N/A",
		TotalServices:      len(entries),
	}

	phones := make([]string, 0, len(entries))
	therapyCounts := make(map[string]int)

	for _, entry := range entries {
		report.TotalBaseSales = report.TotalBaseSales.Add(entry.BasePrice)
		report.TotalGST = report.TotalGST.Add(entry.GSTAmount)
		report.TotalSales = report.TotalSales.Add(entry.TotalAmount)
		if entry.PaymentReceivedBy == models.PaymentReceivedByHotel {
			report.HotelReceived = report.HotelReceived.Add(entry.TotalAmount)
		} else {
			report.NirvaanaReceived = report.NirvaanaReceived.Add(entry.TotalAmount)
		}
		phones = append(phones, entry.CustomerPhone)
		therapyCounts[entry.TherapyType]++
	}
	report.CustomerCount = len(utils.UniqueSlice(phones))

	// Ties break toward the lexicographically smaller name so repeated runs
	// over the same data render the same card.
	bestCount := 0
	for therapy, count := range therapyCounts {
		if count > bestCount || (count == bestCount && bestCount > 0 && therapy < report.MostPopularTherapy) {
			report.MostPopularTherapy = therapy
			bestCount = count
		}
	}

	return report
}
