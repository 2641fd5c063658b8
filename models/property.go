package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nirvaanawellness/spa_backend/utils"
)

// Property is a revenue-share contract with a partner hotel, or one of our
// own locations. HotelName is referenced by other records as a stable key,
// so it must stay unique and must not be renamed casually.
//
// Properties are archived, never deleted: historical service entries keep
// pointing at them.
type Property struct {
	ID                     string           `json:"id"`
	HotelName              string           `json:"hotel_name"`
	Location               string           `json:"location"`
	GSTNumber              string           `json:"gst_number"`
	OwnershipType          OwnershipType    `json:"ownership_type"`
	RevenueSharePercentage *decimal.Decimal `json:"revenue_share_percentage"`
	ContractStartDate      *time.Time       `json:"contract_start_date"`
	PaymentCycle           PaymentCycle     `json:"payment_cycle"`
	ContactPerson          string           `json:"contact_person"`
	ContactNumber          string           `json:"contact_number"`
	Status                 EntityStatus     `json:"status"`
	ArchivedAt             *time.Time       `json:"archived_at"`
	CreatedAt              time.Time        `json:"created_at"`
}

type NewProperty struct {
	HotelName              string           `json:"hotel_name" validate:"required"`
	Location               string           `json:"location" validate:"required"`
	GSTNumber              string           `json:"gst_number"`
	OwnershipType          OwnershipType    `json:"ownership_type"`
	RevenueSharePercentage *decimal.Decimal `json:"revenue_share_percentage"`
	ContractStartDate      *time.Time       `json:"contract_start_date"`
	PaymentCycle           PaymentCycle     `json:"payment_cycle"`
	ContactPerson          string           `json:"contact_person"`
	ContactNumber          string           `json:"contact_number"`
}

func (input *NewProperty) Validate() error {
	if err := utils.ValidateStruct(input); err != nil {
		return err
	}
	if input.OwnershipType == "" {
		input.OwnershipType = OwnershipTypeOutsideProperty
	}
	if !input.OwnershipType.Valid() {
		return errors.New("invalid ownership type")
	}
	if input.OwnershipType == OwnershipTypeOutsideProperty {
		if input.RevenueSharePercentage == nil {
			return errors.New("revenue share percentage is required for outside properties")
		}
		pct := *input.RevenueSharePercentage
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return errors.New("revenue share percentage must be between 0 and 100")
		}
	}
	if input.PaymentCycle == "" {
		input.PaymentCycle = PaymentCycleMonthly
	}
	return nil
}

func BuildProperty(input *NewProperty) (*Property, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	share := input.RevenueSharePercentage
	if input.OwnershipType == OwnershipTypeOurProperty {
		// Owned locations have no revenue-share contract; any submitted
		// percentage is meaningless and must not survive into settlement.
		share = nil
	}
	return &Property{
		ID:                     uuid.NewString(),
		HotelName:              input.HotelName,
		Location:               input.Location,
		GSTNumber:              input.GSTNumber,
		OwnershipType:          input.OwnershipType,
		RevenueSharePercentage: share,
		ContractStartDate:      input.ContractStartDate,
		PaymentCycle:           input.PaymentCycle,
		ContactPerson:          input.ContactPerson,
		ContactNumber:          input.ContactNumber,
		Status:                 EntityStatusActive,
		CreatedAt:              time.Now().UTC(),
	}, nil
}

// EffectiveHotelShare returns the hotel's contractual percentage of base
// revenue. Owned properties always resolve to zero regardless of any stored
// percentage.
func (p *Property) EffectiveHotelShare() decimal.Decimal {
	if p.OwnershipType == OwnershipTypeOurProperty {
		return decimal.Zero
	}
	return utils.DereferencePtr(p.RevenueSharePercentage)
}

func (p *Property) IsOwned() bool {
	return p.OwnershipType == OwnershipTypeOurProperty
}

func (p *Property) IsActive() bool {
	return p.Status == EntityStatusActive
}

func (p *Property) Archive(at time.Time) {
	p.Status = EntityStatusArchived
	p.ArchivedAt = &at
}
