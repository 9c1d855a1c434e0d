package domain

import "time"

type EquipmentCategory string

const (
	CategoryPowerTools        EquipmentCategory = "power_tools"
	CategoryLawnEquipment     EquipmentCategory = "lawn_equipment"
	CategoryWeldingEquipment  EquipmentCategory = "welding_equipment"
	CategoryConstructionTools EquipmentCategory = "construction_tools"
	CategoryAutomotive        EquipmentCategory = "automotive"
	CategoryHousehold         EquipmentCategory = "household"
	CategoryOther             EquipmentCategory = "other"
)

// Categories lists the closed category enum in display order.
var Categories = []EquipmentCategory{
	CategoryPowerTools,
	CategoryLawnEquipment,
	CategoryWeldingEquipment,
	CategoryConstructionTools,
	CategoryAutomotive,
	CategoryHousehold,
	CategoryOther,
}

func (c EquipmentCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxEquipmentImages bounds the number of images attached to one listing.
const MaxEquipmentImages = 10

type Equipment struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    EquipmentCategory `json:"category"`
	PricePerDay float64           `json:"price_per_day"`
	Location    string            `json:"location"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	Images      []string          `json:"images"`
	// AvailabilityCalendar is persisted for wire compatibility only; no
	// operation reads or enforces it.
	AvailabilityCalendar map[string]bool `json:"availability_calendar"`
	MinRentalDays        int             `json:"min_rental_days"`
	MaxRentalDays        *int            `json:"max_rental_days,omitempty"`
	IsAvailable          bool            `json:"is_available"`
	CreatedAt            time.Time       `json:"created_at"`
}

// EquipmentFilter selects listings for the public catalog.
// Zero values mean "no constraint" except for Skip/Limit.
type EquipmentFilter struct {
	Category EquipmentCategory
	Location string
	MaxPrice float64
	Skip     int
	Limit    int
}
