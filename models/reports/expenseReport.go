package reports

import (
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/config"
	"github.com/nirvaanawellness/spa_backend/models"
)

// DistributeExpenses attributes expense amounts to property ids. Expenses
// linked to one property land on it directly (archived or not — historical
// costs stay attributed). Shared expenses are split equally across all
// currently-active properties.
//
// With zero active properties a shared expense has nowhere to go; it is
// left unattributed with a warning rather than dividing by zero.
func DistributeExpenses(expenses []models.Expense, properties []models.Property) map[string]decimal.Decimal {
	attributed := make(map[string]decimal.Decimal)

	var activeIDs []string
	for _, prop := range properties {
		if prop.IsActive() {
			activeIDs = append(activeIDs, prop.ID)
		}
	}
	activeCount := decimal.NewFromInt(int64(len(activeIDs)))

	add := func(id string, amount decimal.Decimal) {
		if existing, ok := attributed[id]; ok {
			attributed[id] = existing.Add(amount)
		} else {
			attributed[id] = amount
		}
	}

	for _, expense := range expenses {
		if !expense.Property.Shared {
			add(expense.Property.PropertyID, expense.Amount)
			continue
		}
		if len(activeIDs) == 0 {
			config.LogWarn(config.GetLogger(), "reports", "DistributeExpenses",
				"shared expense "+expense.ID, "no active properties to distribute shared expense across")
			continue
		}
		perProperty := expense.Amount.Div(activeCount)
		for _, id := range activeIDs {
			add(id, perProperty)
		}
	}

	return attributed
}

// PropertyProfitRow is one property's P&L line: its own share of base
// revenue less attributed expenses. GST never enters profit.
type PropertyProfitRow struct {
	PropertyID   string          `json:"property_id"`
	PropertyName string          `json:"property_name"`
	OwnShare     decimal.Decimal `json:"own_share"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

type ProfitAndLossReport struct {
	Rows          []PropertyProfitRow `json:"rows"`
	OwnShare      decimal.Decimal     `json:"own_share"`
	TotalExpenses decimal.Decimal     `json:"total_expenses"`
	NetProfit     decimal.Decimal     `json:"net_profit"`
}

// GetProfitAndLossReport computes the per-property and total P&L for the
// queried window. It reuses the settlement report for the revenue side, so
// it fails the same way on entries with unresolvable properties.
func GetProfitAndLossReport(query SettlementQuery, data SettlementData) (*ProfitAndLossReport, error) {
	settlement, err := GetSettlementReport(query, data)
	if err != nil {
		return nil, err
	}
	attributed := DistributeExpenses(filterExpenses(data.Expenses, &query), data.Properties)

	report := &ProfitAndLossReport{
		OwnShare:      decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetProfit:     decimal.Zero,
	}
	for _, row := range settlement.Properties {
		expenses := attributed[row.PropertyID]
		profit := row.NirvaanaBaseShare.Sub(expenses)
		report.Rows = append(report.Rows, PropertyProfitRow{
			PropertyID:   row.PropertyID,
			PropertyName: row.PropertyName,
			OwnShare:     row.NirvaanaBaseShare,
			Expenses:     expenses,
			NetProfit:    profit,
		})
		report.OwnShare = report.OwnShare.Add(row.NirvaanaBaseShare)
		report.TotalExpenses = report.TotalExpenses.Add(expenses)
	}
	report.NetProfit = report.OwnShare.Sub(report.TotalExpenses)

	return report, nil
}
