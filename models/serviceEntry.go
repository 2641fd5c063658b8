package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/utils"
)

// ServiceEntry is an immutable fact recorded by a therapist at point of
// sale. Entries are locked on creation and only removed by admin action;
// settlement and forecasting treat them as append-only history.
type ServiceEntry struct {
	ID                string            `json:"id"`
	TherapistID       string            `json:"therapist_id"`
	PropertyID        string            `json:"property_id"`
	CustomerName      string            `json:"customer_name"`
	CustomerPhone     string            `json:"customer_phone"`
	TherapyType       string            `json:"therapy_type"`
	TherapyDuration   string            `json:"therapy_duration"`
	BasePrice         decimal.Decimal   `json:"base_price"`
	GSTAmount         decimal.Decimal   `json:"gst_amount"`
	TotalAmount       decimal.Decimal   `json:"total_amount"`
	PaymentReceivedBy PaymentReceivedBy `json:"payment_received_by"`
	PaymentMode       *PaymentMode      `json:"payment_mode"`
	Date              time.Time         `json:"date"`
	Locked            bool              `json:"locked"`
	CreatedAt         time.Time         `json:"created_at"`
}

type NewServiceEntry struct {
	TherapistID       string            `json:"therapist_id" validate:"required"`
	PropertyID        string            `json:"property_id" validate:"required"`
	CustomerName      string            `json:"customer_name" validate:"required"`
	CustomerPhone     string            `json:"customer_phone" validate:"required"`
	TherapyType       string            `json:"therapy_type" validate:"required"`
	TherapyDuration   string            `json:"therapy_duration"`
	BasePrice         decimal.Decimal   `json:"base_price"`
	PaymentReceivedBy PaymentReceivedBy `json:"payment_received_by"`
	PaymentMode       *PaymentMode      `json:"payment_mode"`
	Date              *time.Time        `json:"date"`
}

func (input *NewServiceEntry) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.BasePrice.IsPositive() {
		return errors.New("base price must be greater than 0")
	}
	if !input.PaymentReceivedBy.Valid() {
		return errors.New("invalid payment received by")
	}
	if input.PaymentMode != nil && !input.PaymentMode.Valid() {
		return errors.New("invalid payment mode")
	}
	return nil
}

// BuildServiceEntry derives the tax fields from the base price and the
// configured GST rate (a percentage, e.g. 5 or 18) and locks the entry.
// Amounts are rounded to currency minor units at creation so every
// downstream aggregate works from the recorded figures.
func BuildServiceEntry(input *NewServiceEntry, gstRatePercent decimal.Decimal) (*ServiceEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	gstAmount := utils.RoundMoney(input.BasePrice.Mul(gstRatePercent).Div(decimal.NewFromInt(100)))
	totalAmount := input.BasePrice.Add(gstAmount)

	now := time.Now().UTC()
	date := now
	if input.Date != nil {
		date = input.Date.UTC()
	}

	return &ServiceEntry{
		ID:                uuid.NewString(),
		TherapistID:       input.TherapistID,
		PropertyID:        input.PropertyID,
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		TherapyType:       input.TherapyType,
		TherapyDuration:   input.TherapyDuration,
		BasePrice:         input.BasePrice,
		GSTAmount:         gstAmount,
		TotalAmount:       totalAmount,
		PaymentReceivedBy: input.PaymentReceivedBy,
		PaymentMode:       input.PaymentMode,
		Date:              date,
		Locked:            true,
		CreatedAt:         now,
	}, nil
}
