package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/utils"
)

// PropertyRef says which property an expense belongs to. Shared expenses
// carry no property id and are split equally across all active properties
// when a P&L is computed.
type PropertyRef struct {
	Shared     bool
	PropertyID string
}

func SpecificProperty(id string) PropertyRef {
	return PropertyRef{PropertyID: id}
}

func SharedAcrossProperties() PropertyRef {
	return PropertyRef{Shared: true}
}

type propertyRefJSON struct {
	Shared     bool   `json:"shared"`
	PropertyID string `json:"property_id,omitempty"`
}

func (r PropertyRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(propertyRefJSON{Shared: r.Shared, PropertyID: r.PropertyID})
}

func (r *PropertyRef) UnmarshalJSON(b []byte) error {
	var raw propertyRefJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Shared && raw.PropertyID != "" {
		return errors.New("shared expense must not carry a property id")
	}
	if !raw.Shared && raw.PropertyID == "" {
		return errors.New("expense needs a property id or the shared flag")
	}
	r.Shared = raw.Shared
	r.PropertyID = raw.PropertyID
	return nil
}

type Expense struct {
	ID          string          `json:"id"`
	Property    PropertyRef     `json:"property"`
	ExpenseType ExpenseType     `json:"expense_type"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TherapistID string          `json:"therapist_id,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

type NewExpense struct {
	Property    PropertyRef     `json:"property"`
	ExpenseType ExpenseType     `json:"expense_type"`
	Category    ExpenseCategory `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TherapistID string          `json:"therapist_id"`
	Date        time.Time       `json:"date" validate:"required"`
	CreatedBy   string          `json:"created_by" validate:"required"`
}

func (input *NewExpense) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if !input.Property.Shared && input.Property.PropertyID == "" {
		return errors.New("expense needs a property id or the shared flag")
	}
	if !input.ExpenseType.Valid() {
		return errors.New("invalid expense type")
	}
	if !input.Category.Valid() {
		return errors.New("invalid expense category")
	}
	if !input.Amount.IsPositive() {
		return errors.New("expense amount must be greater than 0")
	}
	return nil
}

func BuildExpense(input *NewExpense) (*Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return &Expense{
		ID:          uuid.NewString(),
		Property:    input.Property,
		ExpenseType: input.ExpenseType,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		TherapistID: input.TherapistID,
		Date:        input.Date.UTC(),
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
