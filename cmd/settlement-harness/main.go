// settlement-harness runs the settlement and forecast engines over a JSON
// fixture (or generated demo data) and prints the reports. Useful for
// eyeballing contract changes before month-end closing.
//
// Examples:
//
//	go run ./cmd/settlement-harness --demo
//	go run ./cmd/settlement-harness --fixture=fixtures/march.json \
//	  --from=2026-03-01 --to=2026-03-31
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/config"
	"github.com/nirvaanawellness/spa_backend/models"
	"github.com/nirvaanawellness/spa_backend/models/reports"
	"github.com/nirvaanawellness/spa_backend/utils"
)

type fixture struct {
	Services   []models.ServiceEntry `json:"services"`
	Expenses   []models.Expense      `json:"expenses"`
	Properties []models.Property     `json:"properties"`
}

type harnessOutput struct {
	Settlement *models.SettlementReport     `json:"settlement"`
	ProfitLoss *reports.ProfitAndLossReport `json:"profit_and_loss"`
	Forecast   *models.ForecastResult       `json:"forecast"`
	Dashboard  *models.DashboardReport      `json:"dashboard"`
}

func main() {
	var (
		fixturePath = flag.String("fixture", "", "path to a JSON fixture with services/expenses/properties")
		demo        = flag.Bool("demo", false, "run against generated demo data instead of a fixture")
		fromStr     = flag.String("from", "", "settlement window start (YYYY-MM-DD, optional)")
		toStr       = flag.String("to", "", "settlement window end (YYYY-MM-DD, optional)")
	)
	flag.Parse()

	config.LoadEnv()
	logger := config.GetLogger()

	if *fixturePath == "" && !*demo {
		fmt.Fprintln(os.Stderr, "either --fixture or --demo is required")
		flag.Usage()
		os.Exit(2)
	}

	var data fixture
	if *demo {
		data = demoFixture()
	} else {
		raw, err := os.ReadFile(*fixturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read fixture: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			fmt.Fprintf(os.Stderr, "parse fixture: %v\n", err)
			os.Exit(1)
		}
	}

	query := reports.SettlementQuery{}
	var err error
	if query.DateFrom, err = parseDate(*fromStr); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --from: %v\n", err)
		os.Exit(2)
	}
	if query.DateTo, err = parseDate(*toStr); err != nil {
		fmt.Fprintf(os.Stderr, "invalid --to: %v\n", err)
		os.Exit(2)
	}
	if !query.DateTo.IsZero() {
		query.DateTo = query.DateTo.Add(24*time.Hour - time.Nanosecond)
	}

	settlementData := reports.SettlementData{
		Services:   data.Services,
		Expenses:   data.Expenses,
		Properties: data.Properties,
	}

	settlement, err := reports.GetSettlementReport(query, settlementData)
	if err != nil {
		var confErr *utils.ConfigurationError
		if errors.As(err, &confErr) {
			fmt.Fprintf(os.Stderr, "settlement blocked: %v\n", confErr)
			os.Exit(1)
		}
		config.LogError(logger, "settlement-harness", "main", "settlement report", nil, err)
		os.Exit(1)
	}

	pnl, err := reports.GetProfitAndLossReport(query, settlementData)
	if err != nil {
		config.LogError(logger, "settlement-harness", "main", "profit and loss report", nil, err)
		os.Exit(1)
	}

	ref := time.Now().UTC()
	if !query.DateTo.IsZero() {
		ref = query.DateTo
	}
	forecast := reports.GetForecastReport(data.Services, ref, config.DefaultForecastConfig())
	dashboard := reports.GetDashboardReport(data.Services)

	out, err := json.MarshalIndent(harnessOutput{
		Settlement: settlement,
		ProfitLoss: pnl,
		Forecast:   forecast,
		Dashboard:  dashboard,
	}, "", "  ")
	if err != nil {
		config.LogError(logger, "settlement-harness", "main", "marshal output", nil, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// demoFixture mirrors the standard demo dataset: two partner hotels on
// revenue share, one owned location, six months of entries and a mixed bag
// of property-specific and shared expenses.
func demoFixture() fixture {
	gstRate := config.GSTRatePercent()

	taj := mustProperty(&models.NewProperty{
		HotelName:              "Taj Palace Mumbai",
		Location:               "Colaba, Mumbai",
		GSTNumber:              "27AABCT1332L1ZX",
		OwnershipType:          models.OwnershipTypeOutsideProperty,
		RevenueSharePercentage: utils.DecimalPtr(decimal.NewFromInt(50)),
		ContactPerson:          "Rajesh Kumar",
		ContactNumber:          "+912233445566",
	})
	oberoi := mustProperty(&models.NewProperty{
		HotelName:              "The Oberoi Udaipur",
		Location:               "Lake Pichola, Udaipur",
		GSTNumber:              "08AABCT2445M1ZY",
		OwnershipType:          models.OwnershipTypeOutsideProperty,
		RevenueSharePercentage: utils.DecimalPtr(decimal.NewFromInt(55)),
		ContactPerson:          "Priya Sharma",
		ContactNumber:          "+912944556677",
	})
	goa := mustProperty(&models.NewProperty{
		HotelName:     "Nirvaana Retreat Goa",
		Location:      "Anjuna, Goa",
		OwnershipType: models.OwnershipTypeOurProperty,
	})

	properties := []models.Property{*taj, *oberoi, *goa}

	therapies := []struct {
		name     string
		duration string
		price    int64
	}{
		{"Swedish Massage", "60 min", 3000},
		{"Deep Tissue Massage", "90 min", 4500},
		{"Aromatherapy", "60 min", 3500},
	}

	var services []models.ServiceEntry
	now := time.Now().UTC()
	for monthsBack := 5; monthsBack >= 0; monthsBack-- {
		monthStart := utils.MonthOf(now).AddDate(0, -monthsBack, 0)
		// Volume grows toward the present so the demo forecast trends.
		perProperty := 4 + (5 - monthsBack)
		for p, prop := range properties {
			for i := 0; i < perProperty; i++ {
				therapy := therapies[(p+i)%len(therapies)]
				receivedBy := models.PaymentReceivedByNirvaana
				if prop.OwnershipType == models.OwnershipTypeOutsideProperty && i%2 == 0 {
					receivedBy = models.PaymentReceivedByHotel
				}
				date := monthStart.AddDate(0, 0, (i*3)%27)
				entry, err := models.BuildServiceEntry(&models.NewServiceEntry{
					TherapistID:       fmt.Sprintf("therapist-%d", p+1),
					PropertyID:        prop.ID,
					CustomerName:      fmt.Sprintf("Customer %d", i+1),
					CustomerPhone:     fmt.Sprintf("+9198%04d%02d%02d", i, p, monthsBack),
					TherapyType:       therapy.name,
					TherapyDuration:   therapy.duration,
					BasePrice:         decimal.NewFromInt(therapy.price),
					PaymentReceivedBy: receivedBy,
					Date:              &date,
				}, gstRate)
				utils.ErrorPanic(err)
				services = append(services, *entry)
			}
		}
	}

	expenseMonth := utils.MonthOf(now)
	salaries := mustExpense(&models.NewExpense{
		Property:    models.SpecificProperty(taj.ID),
		ExpenseType: models.ExpenseTypeSalary,
		Category:    models.ExpenseCategoryRecurring,
		Amount:      decimal.NewFromInt(35000),
		Description: "Therapist salary",
		Date:        expenseMonth.AddDate(0, 0, 1),
		CreatedBy:   "admin@nirvaana.com",
	})
	oils := mustExpense(&models.NewExpense{
		Property:    models.SharedAcrossProperties(),
		ExpenseType: models.ExpenseTypeOilAromatics,
		Category:    models.ExpenseCategoryAdhoc,
		Amount:      decimal.NewFromInt(12000),
		Description: "Quarterly oil stock",
		Date:        expenseMonth.AddDate(0, 0, 5),
		CreatedBy:   "admin@nirvaana.com",
	})

	return fixture{
		Services:   services,
		Expenses:   []models.Expense{*salaries, *oils},
		Properties: properties,
	}
}

func mustProperty(input *models.NewProperty) *models.Property {
	prop, err := models.BuildProperty(input)
	if err != nil {
		fatalInvalid("property "+input.HotelName, err)
	}
	return prop
}

func mustExpense(input *models.NewExpense) *models.Expense {
	expense, err := models.BuildExpense(input)
	if err != nil {
		fatalInvalid("expense "+input.Description, err)
	}
	return expense
}

func fatalInvalid(what string, err error) {
	fmt.Fprintf(os.Stderr, "%s rejected:\n", what)
	for field, failure := range utils.ProcessValidationErrors(err) {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, failure)
	}
	os.Exit(1)
}
