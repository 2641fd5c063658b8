package reports_test

import (
	"testing"
	"time"

	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/models/reports"
)

func TestDistributeExpenses_SharedSplitsAcrossActive(t *testing.T) {
	archived := outsideProperty("prop-c", "Closed Palace", "50")
	archived.Status = models.EntityStatusArchived

	properties := []models.Property{
		outsideProperty("prop-a", "Taj Palace Mumbai", "50"),
		ownedProperty("prop-b", "Nirvaana Retreat Goa"),
		archived,
	}
	expenses := []models.Expense{
		{ID: "exp-shared", Property: models.SharedAcrossProperties(), Amount: mustDecimal("12000")},
		{ID: "exp-a", Property: models.SpecificProperty("prop-a"), Amount: mustDecimal("500")},
		{ID: "exp-c", Property: models.SpecificProperty("prop-c"), Amount: mustDecimal("700")},
	}

	attributed := reports.DistributeExpenses(expenses, properties)

	// Shared 12000 over the 2 active properties; the archived one gets none
	// of it but keeps its own historical cost.
	if !attributed["prop-a"].Equal(mustDecimal("6500")) {
		t.Fatalf("prop-a expected 6500, got %s", attributed["prop-a"])
	}
	if !attributed["prop-b"].Equal(mustDecimal("6000")) {
		t.Fatalf("prop-b expected 6000, got %s", attributed["prop-b"])
	}
	if !attributed["prop-c"].Equal(mustDecimal("700")) {
		t.Fatalf("prop-c expected 700, got %s", attributed["prop-c"])
	}
}

func TestDistributeExpenses_NoActiveProperties(t *testing.T) {
	archived := outsideProperty("prop-a", "Closed Palace", "50")
	archived.Status = models.EntityStatusArchived

	expenses := []models.Expense{
		{ID: "exp-shared", Property: models.SharedAcrossProperties(), Amount: mustDecimal("9000")},
		{ID: "exp-a", Property: models.SpecificProperty("prop-a"), Amount: mustDecimal("100")},
	}

	// Must not divide by zero; the shared amount stays unattributed.
	attributed := reports.DistributeExpenses(expenses, []models.Property{archived})
	if len(attributed) != 1 {
		t.Fatalf("only the specific expense should be attributed, got %v", attributed)
	}
	if !attributed["prop-a"].Equal(mustDecimal("100")) {
		t.Fatalf("prop-a expected 100, got %s", attributed["prop-a"])
	}
}

func TestGetProfitAndLossReport_ExcludesGST(t *testing.T) {
	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	data := reports.SettlementData{
		Services: []models.ServiceEntry{
			entry("prop-a", "1000", "180", models.PaymentReceivedByNirvaana, march),
		},
		Expenses: []models.Expense{
			{ID: "exp-1", Property: models.SpecificProperty("prop-a"), Amount: mustDecimal("200"), Date: march},
		},
		Properties: []models.Property{outsideProperty("prop-a", "Taj Palace Mumbai", "50")},
	}

	report, err := reports.GetProfitAndLossReport(reports.SettlementQuery{}, data)
	if err != nil {
		t.Fatalf("GetProfitAndLossReport: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(report.Rows))
	}
	row := report.Rows[0]
	// Own share 500 minus expenses 200. The 180 GST never shows up even
	// though it was collected.
	if !row.OwnShare.Equal(mustDecimal("500")) {
		t.Fatalf("own share expected 500, got %s", row.OwnShare)
	}
	if !row.NetProfit.Equal(mustDecimal("300")) {
		t.Fatalf("net profit expected 300, got %s", row.NetProfit)
	}
	if !report.NetProfit.Equal(mustDecimal("300")) {
		t.Fatalf("total net profit expected 300, got %s", report.NetProfit)
	}
}
