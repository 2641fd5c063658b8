package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/utils"
)

var hundred = decimal.NewFromInt(100)

// ShareTerms are one property's contract terms as the calculator needs them.
type ShareTerms struct {
	// HotelSharePercent is the hotel's contractual percentage of base
	// revenue, in [0,100]. Values outside the range are a caller error; the
	// calculator neither validates nor clamps. Ignored when Owned.
	HotelSharePercent decimal.Decimal
	Owned             bool
}

// CalculatePropertySettlement runs the settlement algorithm for one
// property's service entries. Pure and deterministic; an empty entry slice
// yields an all-zero result.
//
// The share percentage applies to base revenue only. GST is settled
// separately and allocated in proportion to each party's base share — tax
// liability follows ownership of the sale, not whichever till collected it.
// The counterparty legs are computed by subtraction so the closure
// invariants (hotel+nirvaana base shares sum to base revenue, collected
// legs sum to gross) hold exactly.
func CalculatePropertySettlement(entries []models.ServiceEntry, terms ShareTerms) *models.PropertySettlement {
	result := &models.PropertySettlement{
		ServiceCount: len(entries),
		BaseRevenue:  decimal.Zero,
		GSTCollected: decimal.Zero,
		GrossRevenue: decimal.Zero,

		HotelCollectedGross:    decimal.Zero,
		NirvaanaCollectedGross: decimal.Zero,

		NirvaanaBaseShare:     decimal.Zero,
		NirvaanaGSTLiability:  decimal.Zero,
		NirvaanaExpectedTotal: decimal.Zero,
	}

	for _, entry := range entries {
		result.BaseRevenue = result.BaseRevenue.Add(entry.BasePrice)
		result.GSTCollected = result.GSTCollected.Add(entry.GSTAmount)
		if entry.PaymentReceivedBy == models.PaymentReceivedByHotel {
			result.HotelCollectedGross = result.HotelCollectedGross.Add(entry.TotalAmount)
		} else {
			result.NirvaanaCollectedGross = result.NirvaanaCollectedGross.Add(entry.TotalAmount)
		}
	}
	result.GrossRevenue = result.BaseRevenue.Add(result.GSTCollected)

	if terms.Owned {
		// Degenerate case: a single party owns the whole sale. Expected
		// hotel-side figures and both settlements are not applicable, which
		// must stay distinguishable from a zero balance.
		result.NirvaanaBaseShare = result.BaseRevenue
		result.NirvaanaGSTLiability = result.GSTCollected
		result.NirvaanaExpectedTotal = result.GrossRevenue
		return result
	}

	shareRatio := terms.HotelSharePercent.Div(hundred)

	hotelBaseShare := result.BaseRevenue.Mul(shareRatio)
	nirvaanaBaseShare := result.BaseRevenue.Sub(hotelBaseShare)

	hotelGSTLiability := result.GSTCollected.Mul(shareRatio)
	nirvaanaGSTLiability := result.GSTCollected.Sub(hotelGSTLiability)

	hotelExpectedTotal := hotelBaseShare.Add(hotelGSTLiability)
	nirvaanaExpectedTotal := nirvaanaBaseShare.Add(nirvaanaGSTLiability)

	hotelSettlement := hotelExpectedTotal.Sub(result.HotelCollectedGross)
	nirvaanaSettlement := nirvaanaExpectedTotal.Sub(result.NirvaanaCollectedGross)

	result.HotelBaseShare = utils.DecimalPtr(hotelBaseShare)
	result.HotelGSTLiability = utils.DecimalPtr(hotelGSTLiability)
	result.HotelExpectedTotal = utils.DecimalPtr(hotelExpectedTotal)
	result.HotelSettlement = utils.DecimalPtr(hotelSettlement)

	result.NirvaanaBaseShare = nirvaanaBaseShare
	result.NirvaanaGSTLiability = nirvaanaGSTLiability
	result.NirvaanaExpectedTotal = nirvaanaExpectedTotal
	result.NirvaanaSettlement = utils.DecimalPtr(nirvaanaSettlement)

	return result
}

// SettlementQuery scopes a settlement report. Zero DateFrom/DateTo leave the
// corresponding bound open; an empty PropertyIDs list means all properties.
type SettlementQuery struct {
	DateFrom    time.Time
	DateTo      time.Time
	PropertyIDs []string
}

func (q *SettlementQuery) matchesDate(d time.Time) bool {
	if !q.DateFrom.IsZero() && d.Before(q.DateFrom) {
		return false
	}
	if !q.DateTo.IsZero() && d.After(q.DateTo) {
		return false
	}
	return true
}

func (q *SettlementQuery) matchesProperty(id string) bool {
	if len(q.PropertyIDs) == 0 {
		return true
	}
	for _, pid := range q.PropertyIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// SettlementData is the already-materialized input slice set. Fetching it
// (and its read consistency during active data entry) is the caller's
// concern; the report itself is a pure function of what it is handed.
type SettlementData struct {
	Services   []models.ServiceEntry
	Expenses   []models.Expense
	Properties []models.Property
}

// GetSettlementReport computes per-property settlements plus the portfolio
// aggregate for the queried window.
//
// A service entry referencing a property with no configured contract terms
// makes the whole report fail with *utils.ConfigurationError: there is no
// safe default share percentage to fall back on. A query filtering on a
// property ID that does not exist at all fails with
// utils.ErrorRecordNotFound.
//
// Portfolio totals are sums over the per-property results, never one
// settlement run over the pooled entries — share terms vary per property
// and must not be averaged.
func GetSettlementReport(query SettlementQuery, data SettlementData) (*models.SettlementReport, error) {
	propertyByID := make(map[string]*models.Property, len(data.Properties))
	for i := range data.Properties {
		propertyByID[data.Properties[i].ID] = &data.Properties[i]
	}

	for _, id := range query.PropertyIDs {
		if _, known := propertyByID[id]; !known {
			return nil, fmt.Errorf("property %s: %w", id, utils.ErrorRecordNotFound)
		}
	}

	grouped := make(map[string][]models.ServiceEntry)
	for _, entry := range data.Services {
		if !query.matchesDate(entry.Date) || !query.matchesProperty(entry.PropertyID) {
			continue
		}
		if _, known := propertyByID[entry.PropertyID]; !known {
			return nil, &utils.ConfigurationError{PropertyID: entry.PropertyID}
		}
		grouped[entry.PropertyID] = append(grouped[entry.PropertyID], entry)
	}

	// Report rows: every active property passing the filter, plus archived
	// ones that still have entries in the window. Zero-entry properties get
	// an all-zero settlement.
	include := make(map[string]bool)
	for _, prop := range data.Properties {
		if query.matchesProperty(prop.ID) && prop.IsActive() {
			include[prop.ID] = true
		}
	}
	for id := range grouped {
		include[id] = true
	}

	report := &models.SettlementReport{
		Portfolio: &models.PortfolioSummary{
			BaseRevenue:            decimal.Zero,
			GSTCollected:           decimal.Zero,
			GrossRevenue:           decimal.Zero,
			HotelShare:             decimal.Zero,
			OwnShare:               decimal.Zero,
			HotelCollectedGross:    decimal.Zero,
			NirvaanaCollectedGross: decimal.Zero,
			TotalExpenses:          decimal.Zero,
			NetProfit:              decimal.Zero,
		},
	}

	for id := range include {
		prop := propertyByID[id]
		settlement := CalculatePropertySettlement(grouped[id], ShareTerms{
			HotelSharePercent: prop.EffectiveHotelShare(),
			Owned:             prop.IsOwned(),
		})
		settlement.PropertyID = prop.ID
		settlement.PropertyName = prop.HotelName
		settlement.OwnershipType = prop.OwnershipType
		settlement.SharePercent = prop.EffectiveHotelShare()
		report.Properties = append(report.Properties, settlement)
	}
	sort.Slice(report.Properties, func(i, j int) bool {
		return report.Properties[i].PropertyName < report.Properties[j].PropertyName
	})

	portfolio := report.Portfolio
	for _, row := range report.Properties {
		portfolio.ServiceCount += row.ServiceCount
		portfolio.BaseRevenue = portfolio.BaseRevenue.Add(row.BaseRevenue)
		portfolio.GSTCollected = portfolio.GSTCollected.Add(row.GSTCollected)
		portfolio.GrossRevenue = portfolio.GrossRevenue.Add(row.GrossRevenue)
		if row.HotelBaseShare != nil {
			portfolio.HotelShare = portfolio.HotelShare.Add(*row.HotelBaseShare)
		}
		portfolio.OwnShare = portfolio.OwnShare.Add(row.NirvaanaBaseShare)
		portfolio.HotelCollectedGross = portfolio.HotelCollectedGross.Add(row.HotelCollectedGross)
		portfolio.NirvaanaCollectedGross = portfolio.NirvaanaCollectedGross.Add(row.NirvaanaCollectedGross)
	}
	portfolio.PropertyCount = len(report.Properties)

	attributed := DistributeExpenses(filterExpenses(data.Expenses, &query), data.Properties)
	for _, row := range report.Properties {
		if amount, ok := attributed[row.PropertyID]; ok {
			portfolio.TotalExpenses = portfolio.TotalExpenses.Add(amount)
		}
	}

	// Net profit excludes GST by business rule: GST is collected for the
	// tax authority, not earned revenue.
	portfolio.NetProfit = portfolio.OwnShare.Sub(portfolio.TotalExpenses)

	return report, nil
}

func filterExpenses(expenses []models.Expense, query *SettlementQuery) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if query.matchesDate(e.Date) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
