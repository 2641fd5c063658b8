package models

import (
	"encoding/json"
	"errors"
)

type PaymentReceivedBy string

const (
	PaymentReceivedByHotel    PaymentReceivedBy = "hotel"
	PaymentReceivedByNirvaana PaymentReceivedBy = "nirvaana"
)

func (t PaymentReceivedBy) Valid() bool {
	switch t {
	case PaymentReceivedByHotel, PaymentReceivedByNirvaana:
		return true
	}
	return false
}

func (t *PaymentReceivedBy) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("payment received by must be string")
	}
	switch str {
	case "hotel":
		*t = PaymentReceivedByHotel
	case "nirvaana":
		*t = PaymentReceivedByNirvaana
	default:
		return errors.New("invalid payment received by")
	}
	return nil
}

type OwnershipType string

const (
	OwnershipTypeOurProperty     OwnershipType = "our_property"
	OwnershipTypeOutsideProperty OwnershipType = "outside_property"
)

func (t OwnershipType) Valid() bool {
	switch t {
	case OwnershipTypeOurProperty, OwnershipTypeOutsideProperty:
		return true
	}
	return false
}

func (t *OwnershipType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("ownership type must be string")
	}
	switch str {
	case "our_property":
		*t = OwnershipTypeOurProperty
	case "outside_property":
		*t = OwnershipTypeOutsideProperty
	default:
		return errors.New("invalid ownership type")
	}
	return nil
}

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusArchived EntityStatus = "archived"
)

func (t EntityStatus) Valid() bool {
	switch t {
	case EntityStatusActive, EntityStatusArchived:
		return true
	}
	return false
}

type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeCard PaymentMode = "card"
)

func (t PaymentMode) Valid() bool {
	switch t {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}

type PaymentCycle string

const (
	PaymentCycleMonthly  PaymentCycle = "monthly"
	PaymentCycleBiweekly PaymentCycle = "biweekly"
)

type ExpenseCategory string

const (
	ExpenseCategoryRecurring ExpenseCategory = "recurring"
	ExpenseCategoryAdhoc     ExpenseCategory = "adhoc"
)

func (t ExpenseCategory) Valid() bool {
	switch t {
	case ExpenseCategoryRecurring, ExpenseCategoryAdhoc:
		return true
	}
	return false
}

type ExpenseType string

const (
	ExpenseTypeSalary       ExpenseType = "salary"
	ExpenseTypeLivingCost   ExpenseType = "living_cost"
	ExpenseTypeMarketing    ExpenseType = "marketing"
	ExpenseTypeDisposables  ExpenseType = "disposables"
	ExpenseTypeOilAromatics ExpenseType = "oil_aromatics"
	ExpenseTypeEssentials   ExpenseType = "essentials"
	ExpenseTypeBillBooks    ExpenseType = "bill_books"
	ExpenseTypeOther        ExpenseType = "other"
)

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseTypeSalary, ExpenseTypeLivingCost, ExpenseTypeMarketing,
		ExpenseTypeDisposables, ExpenseTypeOilAromatics, ExpenseTypeEssentials,
		ExpenseTypeBillBooks, ExpenseTypeOther:
		return true
	}
	return false
}

func (t *ExpenseType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.New("expense type must be string")
	}
	expenseTypes := map[string]ExpenseType{
		"salary":        ExpenseTypeSalary,
		"living_cost":   ExpenseTypeLivingCost,
		"marketing":     ExpenseTypeMarketing,
		"disposables":   ExpenseTypeDisposables,
		"oil_aromatics": ExpenseTypeOilAromatics,
		"essentials":    ExpenseTypeEssentials,
		"bill_books":    ExpenseTypeBillBooks,
		"other":         ExpenseTypeOther,
	}
	val, ok := expenseTypes[str]
	if !ok {
		return errors.New("invalid expense type")
	}
	*t = val
	return nil
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Rank orders confidence levels for comparisons; higher is more confident.
func (c ConfidenceLevel) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

type TrendDirection string

const (
	TrendGrowing   TrendDirection = "growing"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

type ForecastMethod string

const (
	ForecastMethodBlended          ForecastMethod = "weighted_moving_average_with_regression"
	ForecastMethodInsufficientData ForecastMethod = "insufficient_data"
)
